package usecase

import (
	"context"
	"errors"

	"daybalance/internal/model"
	"daybalance/internal/task"
	"daybalance/internal/task/repository"
)

// Complete marks a task DONE and stamps CompletedAt.
func (uc *implUseCase) Complete(ctx context.Context, id string) (model.Task, error) {
	t, err := uc.Get(ctx, id)
	if err != nil {
		return model.Task{}, err
	}
	if t.Status == model.TaskStatusDone {
		return model.Task{}, task.ErrAlreadyDone
	}

	completedAt := uc.now()
	t.Status = model.TaskStatusDone
	t.CompletedAt = &completedAt

	if err := uc.repo.Update(ctx, t); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.Task{}, task.ErrNotFound
		}
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.Complete: done id=%s type=%s", t.ID, t.Type)
	return t, nil
}
