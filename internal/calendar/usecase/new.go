package usecase

import (
	"time"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/pkg/datemath"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultListLimit     = 50
	defaultUpcomingLimit = 5
)

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new calendar UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository, dateMath *datemath.Parser) calendar.UseCase {
	return &implUseCase{
		l:        l,
		repo:     repo,
		dateMath: dateMath,
		now:      time.Now,
	}
}
