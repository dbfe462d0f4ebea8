package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/suggestion/repository"
	pkgLog "productivity-assistant/pkg/log"
)

const (
	defaultListLimit = 10
	lookupLimit      = 50
)

// Config tunes how long listed suggestions are remembered for Accept.
type Config struct {
	CacheSize int
	CacheTTL  time.Duration
}

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	tasks  suggestion.TaskCreator
	events suggestion.EventCreator
	seen   *expirable.LRU[string, suggestion.Suggestion]
}

// New creates a new suggestion UseCase instance. tasks and events carry
// out accepted payloads; either may be nil, which makes that kind generic.
func New(l pkgLog.Logger, repo repository.Repository, tasks suggestion.TaskCreator, events suggestion.EventCreator, cfg Config) suggestion.UseCase {
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 256
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 15 * time.Minute
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		tasks:  tasks,
		events: events,
		seen:   expirable.NewLRU[string, suggestion.Suggestion](cfg.CacheSize, nil, cfg.CacheTTL),
	}
}
