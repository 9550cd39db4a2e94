package usecase

import (
	"context"
	"time"

	"daybalance/internal/model"
	"daybalance/internal/task"
	"daybalance/internal/task/repository"
)

// Points per completed task, by category. Play is weighted highest:
// obligations get done anyway, recovery is cheap, carving out play is
// what the score is meant to reward.
const (
	adultPoints = 2
	childPoints = 3
	restPoints  = 1
)

// Balance computes the balance score and label for one day.
func (uc *implUseCase) Balance(ctx context.Context, date string) (task.Balance, error) {
	done, err := uc.repo.List(ctx, repository.ListOptions{
		Date:   date,
		Status: model.TaskStatusDone,
	})
	if err != nil {
		return task.Balance{}, err
	}

	b := countBalance(done)
	uc.l.Debugf(ctx, "task.Balance: date=%s score=%d label=%q", date, b.Score, b.Label)
	return b, nil
}

// History aggregates the past days days (ending the day before date)
// into one summary per day, oldest first.
func (uc *implUseCase) History(ctx context.Context, date string, days int) ([]model.DaySummary, error) {
	if days <= 0 {
		days = 7
	}

	end, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, err
	}
	from := end.AddDate(0, 0, -days).Format("2006-01-02")
	to := end.AddDate(0, 0, -1).Format("2006-01-02")

	done, err := uc.repo.List(ctx, repository.ListOptions{
		DateFrom: from,
		DateTo:   to,
		Status:   model.TaskStatusDone,
	})
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]model.Task, days)
	for _, t := range done {
		byDate[t.ScheduledDate] = append(byDate[t.ScheduledDate], t)
	}

	out := make([]model.DaySummary, 0, days)
	for i := days; i >= 1; i-- {
		day := end.AddDate(0, 0, -i).Format("2006-01-02")
		b := countBalance(byDate[day])
		out = append(out, model.DaySummary{
			Date:           day,
			Score:          b.Score,
			AdultCompleted: b.Adult,
			ChildCompleted: b.Child,
			RestCompleted:  b.Rest,
		})
	}
	return out, nil
}

func countBalance(done []model.Task) task.Balance {
	var b task.Balance
	for _, t := range done {
		switch t.Type {
		case model.TaskTypeAdult:
			b.Adult++
		case model.TaskTypeChild:
			b.Child++
		case model.TaskTypeRest:
			b.Rest++
		}
	}
	b.Score = b.Adult*adultPoints + b.Child*childPoints + b.Rest*restPoints
	b.Label = balanceLabel(b)
	return b
}

func balanceLabel(b task.Balance) string {
	switch {
	case b.Adult == 0 && b.Child == 0 && b.Rest == 0:
		return "Just Getting Started"
	case b.Adult > 0 && b.Child > 0 && b.Rest > 0:
		return "Well Balanced"
	case b.Child == 0 && b.Rest == 0:
		return "All Work, No Play"
	case b.Adult == 0:
		return "All Play, No Work"
	default:
		return "Finding Balance"
	}
}
