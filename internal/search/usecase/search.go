package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"productivity-assistant/internal/search"
	"productivity-assistant/internal/search/repository"
)

func (uc *implUseCase) Search(ctx context.Context, input search.SearchInput) (search.SearchOutput, error) {
	query := strings.TrimSpace(input.Query)
	if query == "" {
		return search.SearchOutput{}, search.ErrEmptyQuery
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return search.SearchOutput{}, search.ErrQueryTooLong
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)

	res, err := uc.repo.Search(ctx, repository.SearchOptions{Query: query, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Search: %v", err)
		return search.SearchOutput{}, err
	}

	results := res.Results
	if len(results) > limit {
		results = results[:limit]
	}
	return search.SearchOutput{
		Query:   query,
		Results: results,
		Total:   res.Total,
		Took:    res.Took,
	}, nil
}

// Suggestions is called on every keystroke, so answers are cached per
// normalized prefix.
func (uc *implUseCase) Suggestions(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minSuggestRunes {
		return []string{}, nil
	}
	if utf8.RuneCountInString(query) > maxQueryLen {
		return nil, search.ErrQueryTooLong
	}

	key := strings.ToLower(query)
	out, _, err := uc.suggest.GetOrFetch(ctx, key, func(ctx context.Context) ([]string, error) {
		s, err := uc.repo.Suggestions(ctx, query)
		if s == nil && err == nil {
			s = []string{}
		}
		return s, err
	})
	if err != nil {
		uc.l.Errorf(ctx, "search.usecase.Suggestions: %v", err)
		return nil, err
	}
	return out, nil
}
