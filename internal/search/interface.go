package search

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Search(ctx context.Context, input SearchInput) (SearchOutput, error)
	// Suggestions completes a partial query. Very short input yields none.
	Suggestions(ctx context.Context, query string) ([]string, error)
}
