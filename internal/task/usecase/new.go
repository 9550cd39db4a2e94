package usecase

import (
	"time"

	"daybalance/internal/task/repository"
	pkgLog "daybalance/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
	now  func() time.Time
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) *implUseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
		now:  time.Now,
	}
}
