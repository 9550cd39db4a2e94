package usecase

import (
	"context"
	"time"

	"daybalance/internal/coach"
	"daybalance/internal/model"
	"daybalance/internal/task"
	"daybalance/pkg/gcalendar"
)

// ApplyAction materializes one accepted action into a stored task, then
// mirrors it to the calendar. The mirror is best-effort: a calendar
// failure never undoes the created task.
func (uc *implUseCase) ApplyAction(ctx context.Context, input coach.ApplyActionInput) (model.Task, error) {
	created, err := uc.taskUC.Create(ctx, task.CreateInput{
		Title:         input.Title,
		Type:          input.Type,
		ScheduledDate: input.Date,
		ScheduledTime: input.Time,
		Duration:      input.Duration,
	})
	if err != nil {
		return model.Task{}, err
	}

	uc.tryMirrorCalendar(ctx, created)
	return created, nil
}

func (uc *implUseCase) tryMirrorCalendar(ctx context.Context, t model.Task) {
	if uc.calendar == nil || !t.Scheduled() {
		return
	}

	loc := uc.localNow().Location()
	start, err := time.ParseInLocation(dateLayout+" "+timeLayout, t.ScheduledDate+" "+t.ScheduledTime, loc)
	if err != nil {
		uc.l.Warnf(ctx, "coach.ApplyAction: bad schedule on %q: %v", t.Title, err)
		return
	}

	_, err = uc.calendar.CreateEvent(ctx, gcalendar.EventRequest{
		Title:    t.Title,
		Start:    start,
		Duration: time.Duration(t.Duration) * time.Minute,
		Timezone: uc.prefs.Timezone,
	})
	if err != nil {
		uc.l.Warnf(ctx, "coach.ApplyAction: calendar mirror failed for %q (non-fatal): %v", t.Title, err)
		return
	}

	uc.l.Infof(ctx, "coach.ApplyAction: mirrored %q to calendar", t.Title)
}
