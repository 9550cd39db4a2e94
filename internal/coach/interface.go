package coach

import (
	"context"

	"daybalance/internal/model"
)

// UseCase defines the business logic interface for the coach domain.
type UseCase interface {
	// Advice returns a short suggestion for the current moment. Cached
	// per day.
	Advice(ctx context.Context) (string, error)

	// Summary returns an end-of-day recap. Cached per day.
	Summary(ctx context.Context) (string, error)

	// Predict returns a forecast for tomorrow from the 7-day history.
	// Cached per day.
	Predict(ctx context.Context) (string, error)

	// Chat answers a free-form question. The response streams to the
	// websocket hub while it is generated; the returned output carries
	// the final cleaned text, the thought block, and any task-creation
	// actions the model proposed.
	Chat(ctx context.Context, input ChatInput) (ChatOutput, error)

	// ScheduleAssist suggests a category, date, time, and duration for
	// a task title. Never fails: a local parse covers backend failure.
	ScheduleAssist(ctx context.Context, title string) (Suggestion, error)

	// ApplyAction materializes a proposed action into a stored task and
	// mirrors it to the calendar best-effort.
	ApplyAction(ctx context.Context, input ApplyActionInput) (model.Task, error)
}
