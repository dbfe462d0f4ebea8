package usecase

import (
	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new task UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) task.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
