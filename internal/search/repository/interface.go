package repository

import "context"

// Repository is the backend web search API.
type Repository interface {
	Search(ctx context.Context, opt SearchOptions) (SearchResult, error)
	Suggestions(ctx context.Context, query string) ([]string, error)
}
