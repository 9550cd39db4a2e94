package task

import (
	"context"

	"daybalance/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create validates and persists a new task.
	Create(ctx context.Context, input CreateInput) (model.Task, error)

	// Get returns a single task by ID.
	Get(ctx context.Context, id string) (model.Task, error)

	// List returns tasks matching the filter, newest first.
	List(ctx context.Context, input ListInput) ([]model.Task, error)

	// Update applies the non-zero fields of input to an existing task.
	Update(ctx context.Context, id string, input UpdateInput) (model.Task, error)

	// Delete removes a task.
	Delete(ctx context.Context, id string) error

	// Complete marks a task DONE and stamps CompletedAt.
	Complete(ctx context.Context, id string) (model.Task, error)

	// Balance computes the balance score and label for one day.
	Balance(ctx context.Context, date string) (Balance, error)

	// History aggregates the past n days (ending the day before date)
	// into one summary per day, oldest first.
	History(ctx context.Context, date string, days int) ([]model.DaySummary, error)
}
