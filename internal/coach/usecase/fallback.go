package usecase

import (
	"strings"
	"time"

	"daybalance/internal/coach"
	"daybalance/internal/model"
	"daybalance/pkg/temporal"
)

// Keyword hints for local category classification. Anything unmatched
// counts as an obligation.
var (
	restWords  = []string{"gym", "sleep", "nap", "rest", "workout", "run", "walk", "yoga", "meditat", "stretch"}
	childWords = []string{"play", "movie", "game", "fun", "party", "hang out", "hobby", "paint", "draw", "music", "read"}
)

// fallbackSuggestion computes a suggestion locally from the title alone.
// It always succeeds: missing pieces get defaults.
func (uc *implUseCase) fallbackSuggestion(title string) coach.Suggestion {
	now := uc.localNow()
	expr := temporal.Parse(title, now)

	date := expr.Date
	if date == "" {
		date = now.Format(dateLayout)
	}

	timeOfDay := expr.Time
	if timeOfDay == "" {
		// Top of the next hour, rolling the date when that crosses
		// midnight.
		next := now.Truncate(time.Hour).Add(time.Hour)
		if next.Day() != now.Day() && expr.Date == "" {
			date = next.Format(dateLayout)
		}
		timeOfDay = next.Format(timeLayout)
	}

	duration := expr.Duration
	if duration <= 0 {
		duration = model.DefaultTaskDuration
	}

	return coach.Suggestion{
		Type:     classifyTitle(title),
		Date:     date,
		Time:     timeOfDay,
		Duration: duration,
		Fallback: true,
	}
}

func classifyTitle(title string) model.TaskType {
	lower := strings.ToLower(title)
	for _, w := range restWords {
		if strings.Contains(lower, w) {
			return model.TaskTypeRest
		}
	}
	for _, w := range childWords {
		if strings.Contains(lower, w) {
			return model.TaskTypeChild
		}
	}
	return model.TaskTypeAdult
}
