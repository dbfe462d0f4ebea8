package usecase

import (
	"productivity-assistant/internal/email"
	"productivity-assistant/internal/email/repository"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultRecentLimit = 10
	maxRecentLimit     = 100
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.Repository
}

// New creates a new email UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) email.UseCase {
	return &implUseCase{l: l, repo: repo}
}
