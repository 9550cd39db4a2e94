package usecase

import (
	"context"
	"time"

	"daybalance/internal/coach/prompt"
	"daybalance/internal/task"
	"daybalance/pkg/freeslot"
)

// localNow returns the current time in the user's timezone.
func (uc *implUseCase) localNow() time.Time {
	now := uc.now()
	tz := uc.prefs.Timezone
	if tz == "" || tz == "Local" {
		return now
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return now
	}
	return now.In(loc)
}

func (uc *implUseCase) window() freeslot.Window {
	w := freeslot.DefaultWindow()
	if uc.prefs.SleepStart != "" {
		w.SleepStart = uc.prefs.SleepStart
	}
	if uc.prefs.SleepEnd != "" {
		w.SleepEnd = uc.prefs.SleepEnd
	}
	return w
}

// buildState gathers the day's state for a prompt. History is loaded
// only for the modes whose bodies use it.
func (uc *implUseCase) buildState(ctx context.Context, mode prompt.Mode) (prompt.State, error) {
	now := uc.localNow()
	date := now.Format(dateLayout)

	s := prompt.State{Mode: mode, Now: now}

	tasks, err := uc.taskUC.List(ctx, task.ListInput{Date: date})
	if err != nil {
		return prompt.State{}, err
	}
	s.Tasks = tasks
	s.FreeSlots = freeslot.Describe(tasks, date, uc.window())

	balance, err := uc.taskUC.Balance(ctx, date)
	if err != nil {
		return prompt.State{}, err
	}
	s.Score = balance.Score
	s.Label = balance.Label
	s.CompletedAdult = balance.Adult
	s.CompletedChild = balance.Child
	s.CompletedRest = balance.Rest

	if mode == prompt.ModeChat || mode == prompt.ModePredict {
		history, err := uc.taskUC.History(ctx, date, historyDays)
		if err != nil {
			return prompt.State{}, err
		}
		s.History = history
	}

	return s, nil
}
