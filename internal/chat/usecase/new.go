package usecase

import (
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/chat/repository"
	"productivity-assistant/pkg/fetchcache"
	pkgLog "productivity-assistant/pkg/log"
)

// Config tunes the chat use case.
type Config struct {
	// MaxSessions bounds how many conversations stay open at once.
	MaxSessions int
	// SessionTTL closes conversations idle for longer.
	SessionTTL time.Duration
	// HistoryPageSize is the page size used when loading history.
	HistoryPageSize int
	// HistoryMaxMessages caps how much history a load pulls in.
	HistoryMaxMessages int
	// HistoryCacheTTL bounds how long a loaded history seeds a reopened session.
	HistoryCacheTTL time.Duration
}

func (c Config) withDefaults() Config {
	if c.MaxSessions <= 0 {
		c.MaxSessions = 32
	}
	if c.SessionTTL <= 0 {
		c.SessionTTL = 12 * time.Hour
	}
	if c.HistoryPageSize <= 0 {
		c.HistoryPageSize = 50
	}
	if c.HistoryMaxMessages <= 0 {
		c.HistoryMaxMessages = 500
	}
	if c.HistoryCacheTTL <= 0 {
		c.HistoryCacheTTL = 30 * time.Minute
	}
	return c
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	cfg      Config
	history  *fetchcache.Cache[[]chat.Message]
	sessions *expirable.LRU[string, *implManager]
	openMu   sync.Mutex
}

// New creates the chat UseCase.
func New(l pkgLog.Logger, repo repository.Repository, cfg Config) chat.UseCase {
	cfg = cfg.withDefaults()
	return &implUseCase{
		l:        l,
		repo:     repo,
		cfg:      cfg,
		history:  fetchcache.New[[]chat.Message](cfg.MaxSessions*2, cfg.HistoryCacheTTL),
		sessions: expirable.NewLRU[string, *implManager](cfg.MaxSessions, nil, cfg.SessionTTL),
	}
}
