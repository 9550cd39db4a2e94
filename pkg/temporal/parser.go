package temporal

import (
	"fmt"
	"time"
)

// Parse extracts a date, a time of day, and a duration from free text.
// It is pure and deterministic given the reference time: the same text and
// reference always produce the same Expression.
//
// Stages run in strict order and each consumes its matched substring, so
// a duration number can never be mistaken for a clock time and a date
// fragment can never feed the time matcher.
func Parse(text string, now time.Time) Expression {
	var exp Expression

	duration, rest := matchDuration(text)
	exp.Duration = duration

	date, explicitDate, rest := matchDate(rest, now)

	timeOfDay, rest := matchTime(rest)
	if timeOfDay == "" {
		// Relative fallback: "in N hours" shifts the reference moment.
		// Crossing midnight advances a defaulted date by one day;
		// an explicitly stated date always wins.
		if shifted, ok, _ := matchRelativeHours(rest, now); ok {
			timeOfDay = fmt.Sprintf("%02d:%02d", shifted.Hour(), shifted.Minute())
			if !explicitDate && shifted.Day() != now.Day() {
				date = startOfDay(shifted)
			}
		}
	}
	exp.Time = timeOfDay

	if date.Format(DateLayout) != now.Format(DateLayout) {
		exp.Date = date.Format(DateLayout)
	}

	return exp
}
