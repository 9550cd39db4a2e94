package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"daybalance/internal/model"
	"daybalance/internal/task"
	"daybalance/internal/task/repository"
)

// Create validates and persists a new task.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if !input.Type.Valid() {
		return model.Task{}, task.ErrInvalidType
	}

	duration := input.Duration
	if duration <= 0 {
		duration = model.DefaultTaskDuration
	}

	t := model.Task{
		ID:            uuid.NewString(),
		Title:         title,
		Type:          input.Type,
		Status:        model.TaskStatusTodo,
		ScheduledDate: input.ScheduledDate,
		ScheduledTime: input.ScheduledTime,
		Duration:      duration,
		CreatedAt:     uc.now(),
	}

	if err := uc.repo.Create(ctx, t); err != nil {
		uc.l.Errorf(ctx, "task.Create: persist %q failed: %v", title, err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.Create: created %q id=%s type=%s", t.Title, t.ID, t.Type)
	return t, nil
}

// Get returns a single task by ID.
func (uc *implUseCase) Get(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

// List returns tasks matching the filter, newest first.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) ([]model.Task, error) {
	return uc.repo.List(ctx, repository.ListOptions{
		Date:   input.Date,
		Status: input.Status,
		Limit:  input.Limit,
		Offset: input.Offset,
	})
}

// Update applies the non-zero fields of input to an existing task.
func (uc *implUseCase) Update(ctx context.Context, id string, input task.UpdateInput) (model.Task, error) {
	t, err := uc.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		t.Title = title
	}
	if input.Type != "" {
		if !input.Type.Valid() {
			return model.Task{}, task.ErrInvalidType
		}
		t.Type = input.Type
	}
	if input.Status != "" {
		switch input.Status {
		case model.TaskStatusTodo, model.TaskStatusStart, model.TaskStatusDone:
		default:
			return model.Task{}, task.ErrInvalidStatus
		}
		t.Status = input.Status
		if input.Status != model.TaskStatusDone {
			t.CompletedAt = nil
		}
	}
	if input.ScheduledDate != "" {
		t.ScheduledDate = input.ScheduledDate
	}
	if input.ScheduledTime != "" {
		t.ScheduledTime = input.ScheduledTime
	}
	if input.Duration > 0 {
		t.Duration = input.Duration
	}

	if err := uc.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}
	return t, nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, id string) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return task.ErrNotFound
		}
		return err
	}
	uc.l.Infof(ctx, "task.Delete: removed id=%s", id)
	return nil
}
