package usecase

import (
	"time"

	"productivity-assistant/internal/search"
	"productivity-assistant/internal/search/repository"
	"productivity-assistant/pkg/fetchcache"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultLimit = 10
	maxLimit     = 20

	maxQueryLen      = 500
	minSuggestRunes  = 2
	suggestCacheSize = 256
	suggestCacheTTL  = 10 * time.Minute
)

type implUseCase struct {
	l       pkgLog.Logger
	repo    repository.Repository
	suggest *fetchcache.Cache[[]string]
}

// New creates a new search UseCase instance.
func New(l pkgLog.Logger, repo repository.Repository) search.UseCase {
	return &implUseCase{
		l:       l,
		repo:    repo,
		suggest: fetchcache.New[[]string](suggestCacheSize, suggestCacheTTL),
	}
}
