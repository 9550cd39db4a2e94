package repository

import (
	"context"
	"errors"

	"daybalance/internal/model"
)

// ErrNotFound is returned when a task does not exist in the store.
var ErrNotFound = errors.New("repository: task not found")

// Repository is the interface for task persistence.
type Repository interface {
	Create(ctx context.Context, t model.Task) error
	Get(ctx context.Context, id string) (model.Task, error)
	List(ctx context.Context, opt ListOptions) ([]model.Task, error)
	Update(ctx context.Context, t model.Task) error
	Delete(ctx context.Context, id string) error
}
