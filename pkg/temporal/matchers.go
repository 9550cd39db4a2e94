package temporal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Each matcher is pure: it returns its capture plus the residual text with
// the matched substring removed, so later stages never re-match the same
// characters. Matchers run in a fixed order (duration, date, time,
// relative hours); precedence is the whole disambiguation strategy.

var (
	durationRe = regexp.MustCompile(`(?i)\b(in\s+)?(\d+)\s*(mins?|minutes?|hrs?|hours?)\b`)

	numericDateRe = regexp.MustCompile(`(?i)\b(\d{1,2})[/-](\d{1,2})(?:[/-](\d{2,4}))?\b`)
	namedDateRe   = regexp.MustCompile(`(?i)\b(january|february|march|april|may|june|july|august|september|october|november|december|jan|feb|mar|apr|jun|jul|aug|sep|sept|oct|nov|dec)\.?\s+(\d{1,2})(?:st|nd|rd|th)?\b`)
	tomorrowRe    = regexp.MustCompile(`(?i)\btomorrow\b`)
	nextWeekdayRe = regexp.MustCompile(`(?i)\bnext\s+(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)

	timeRe     = regexp.MustCompile(`(?i)(at\s+)?\b(\d{1,4})(?::(\d{2}))?\s*(am|pm|a|p)?\b`)
	inHoursRe  = regexp.MustCompile(`(?i)\bin\s+(\d+)\s*(hours?|hrs?)\b`)
	monthIndex = map[string]time.Month{
		"jan": time.January, "feb": time.February, "mar": time.March,
		"apr": time.April, "may": time.May, "jun": time.June,
		"jul": time.July, "aug": time.August, "sep": time.September,
		"oct": time.October, "nov": time.November, "dec": time.December,
	}
	weekdayIndex = map[string]time.Weekday{
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday,
		"sunday": time.Sunday,
	}
)

// matchDuration extracts the first duration phrase ("45 min", "2 hours").
// A phrase led by "in" is left untouched for the relative-hours stage.
func matchDuration(text string) (int, string) {
	for _, m := range durationRe.FindAllStringSubmatchIndex(text, -1) {
		if m[2] != -1 { // "in " prefix present, not a duration
			continue
		}
		n, err := strconv.Atoi(text[m[4]:m[5]])
		if err != nil || n <= 0 {
			continue
		}
		unit := strings.ToLower(text[m[6]:m[7]])
		if strings.HasPrefix(unit, "h") {
			n *= 60
		}
		return n, cut(text, m[0], m[1])
	}
	return 0, text
}

// matchDate tries the date patterns in precedence order. It always
// resolves to some day; explicit reports whether the text actually named
// one, as opposed to defaulting to the reference day.
func matchDate(text string, now time.Time) (date time.Time, explicit bool, residual string) {
	if m := numericDateRe.FindStringSubmatchIndex(text); m != nil {
		month, _ := strconv.Atoi(text[m[2]:m[3]])
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		year := now.Year()
		if m[6] != -1 {
			year, _ = strconv.Atoi(text[m[6]:m[7]])
			if year < 100 {
				year += 2000
			}
		}
		if month >= 1 && month <= 12 && day >= 1 && day <= 31 {
			d := time.Date(year, time.Month(month), day, 0, 0, 0, 0, now.Location())
			return d, true, cut(text, m[0], m[1])
		}
	}

	if m := namedDateRe.FindStringSubmatchIndex(text); m != nil {
		name := strings.ToLower(text[m[2]:m[3]])
		month := monthIndex[name[:3]]
		day, _ := strconv.Atoi(text[m[4]:m[5]])
		if day >= 1 && day <= 31 {
			d := time.Date(now.Year(), month, day, 0, 0, 0, 0, now.Location())
			// A named date far behind the reference day means next year.
			if d.Before(now.AddDate(0, -1, 0)) {
				d = d.AddDate(1, 0, 0)
			}
			return d, true, cut(text, m[0], m[1])
		}
	}

	if m := tomorrowRe.FindStringIndex(text); m != nil {
		return startOfDay(now).AddDate(0, 0, 1), true, cut(text, m[0], m[1])
	}

	if m := nextWeekdayRe.FindStringSubmatchIndex(text); m != nil {
		target := weekdayIndex[strings.ToLower(text[m[2]:m[3]])]
		offset := int(target - now.Weekday())
		if offset <= 0 {
			offset += 7
		}
		return startOfDay(now).AddDate(0, 0, offset), true, cut(text, m[0], m[1])
	}

	return startOfDay(now), false, text
}

// matchTime scans for the first plausible clock time. A bare number is
// only a time when a disambiguating signal is present: a leading "at", an
// am/pm suffix, or an explicit colon. Out-of-range candidates are skipped
// and scanning continues.
func matchTime(text string) (string, string) {
	for _, m := range timeRe.FindAllStringSubmatchIndex(text, -1) {
		hasAt := m[2] != -1
		hasColon := m[6] != -1
		suffix := ""
		if m[8] != -1 {
			suffix = strings.ToLower(text[m[8]:m[9]])
		}
		if !hasAt && !hasColon && suffix == "" {
			continue
		}

		digits := text[m[4]:m[5]]
		var hour, minute int
		switch {
		case hasColon:
			hour, _ = strconv.Atoi(digits)
			minute, _ = strconv.Atoi(text[m[6]:m[7]])
		case len(digits) >= 3:
			// Compact form: "130p" is 1:30, "1030" is 10:30.
			hour, _ = strconv.Atoi(digits[:len(digits)-2])
			minute, _ = strconv.Atoi(digits[len(digits)-2:])
		default:
			hour, _ = strconv.Atoi(digits)
		}

		if strings.HasPrefix(suffix, "p") && hour < 12 {
			hour += 12
		}
		if strings.HasPrefix(suffix, "a") && hour == 12 {
			hour = 0
		}
		if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			continue
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), cut(text, m[0], m[1])
	}
	return "", text
}

// matchRelativeHours handles "in N hours" when no absolute time matched.
// The returned moment is the reference time shifted forward.
func matchRelativeHours(text string, now time.Time) (time.Time, bool, string) {
	m := inHoursRe.FindStringSubmatchIndex(text)
	if m == nil {
		return time.Time{}, false, text
	}
	n, err := strconv.Atoi(text[m[2]:m[3]])
	if err != nil || n <= 0 {
		return time.Time{}, false, text
	}
	return now.Add(time.Duration(n) * time.Hour), true, cut(text, m[0], m[1])
}

func cut(text string, start, end int) string {
	return strings.TrimSpace(text[:start] + " " + text[end:])
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
