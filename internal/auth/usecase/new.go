package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"productivity-assistant/internal/auth"
	"productivity-assistant/internal/auth/repository"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultStateTTL  = 10 * time.Minute
	maxPendingStates = 64
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	holder *auth.Holder
	// states holds OAuth state values issued by StartGoogleLogin.
	states *expirable.LRU[string, struct{}]
	now    func() time.Time
}

// New creates the auth UseCase. stateTTL bounds how long a Google
// login popup may take; zero uses ten minutes.
func New(l pkgLog.Logger, repo repository.Repository, holder *auth.Holder, stateTTL time.Duration) auth.UseCase {
	if stateTTL <= 0 {
		stateTTL = defaultStateTTL
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		holder: holder,
		states: expirable.NewLRU[string, struct{}](maxPendingStates, nil, stateTTL),
		now:    time.Now,
	}
}
