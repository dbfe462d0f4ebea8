package usecase

import (
	"time"

	"productivity-assistant/internal/dashboard"
	"productivity-assistant/pkg/datemath"
	"productivity-assistant/pkg/fetchcache"
	pkgLog "productivity-assistant/pkg/log"
)

// Config sizes the sections and the cache.
type Config struct {
	TaskLimit       int
	EventLimit      int
	EmailLimit      int
	SuggestionLimit int
	// SectionTimeout bounds each section fetch.
	SectionTimeout time.Duration
	CacheTTL       time.Duration
	CacheSize      int
}

func (c Config) withDefaults() Config {
	if c.TaskLimit <= 0 {
		c.TaskLimit = 50
	}
	if c.EventLimit <= 0 {
		c.EventLimit = 5
	}
	if c.EmailLimit <= 0 {
		c.EmailLimit = 5
	}
	if c.SuggestionLimit <= 0 {
		c.SuggestionLimit = 10
	}
	if c.SectionTimeout <= 0 {
		c.SectionTimeout = 10 * time.Second
	}
	if c.CacheTTL <= 0 {
		c.CacheTTL = time.Minute
	}
	if c.CacheSize <= 0 {
		c.CacheSize = 16
	}
	return c
}

type implUseCase struct {
	l        pkgLog.Logger
	src      dashboard.Sources
	dateMath *datemath.Parser
	cfg      Config
	cache    *fetchcache.Cache[dashboard.Dashboard]
	now      func() time.Time
}

// New creates a new dashboard UseCase instance.
func New(l pkgLog.Logger, src dashboard.Sources, dateMath *datemath.Parser, cfg Config) dashboard.UseCase {
	cfg = cfg.withDefaults()
	return &implUseCase{
		l:        l,
		src:      src,
		dateMath: dateMath,
		cfg:      cfg,
		cache:    fetchcache.New[dashboard.Dashboard](cfg.CacheSize, cfg.CacheTTL),
		now:      time.Now,
	}
}
