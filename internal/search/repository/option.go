package repository

import (
	"time"

	"productivity-assistant/internal/search"
)

type SearchOptions struct {
	Query string
	Limit int
}

type SearchResult struct {
	Query   string
	Results []search.Result
	Total   int
	Took    time.Duration
}
