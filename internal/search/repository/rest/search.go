package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"productivity-assistant/internal/search"
	"productivity-assistant/internal/search/repository"
)

func (r *implRepository) Search(ctx context.Context, opt repository.SearchOptions) (repository.SearchResult, error) {
	q := url.Values{}
	q.Set("q", opt.Query)
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}

	var resp searchResp
	if err := r.client.Get(ctx, "/search/web", q, &resp); err != nil {
		return repository.SearchResult{}, fmt.Errorf("search.rest.Search: %w", err)
	}

	results := make([]search.Result, 0, len(resp.Results))
	for _, d := range resp.Results {
		results = append(results, d.toDomain())
	}
	return repository.SearchResult{
		Query:   resp.Query,
		Results: results,
		Total:   resp.TotalResults,
		Took:    resp.took(),
	}, nil
}

func (r *implRepository) Suggestions(ctx context.Context, query string) ([]string, error) {
	q := url.Values{}
	q.Set("q", query)

	var resp suggestionsResp
	if err := r.client.Get(ctx, "/search/suggestions", q, &resp); err != nil {
		return nil, fmt.Errorf("search.rest.Suggestions: %w", err)
	}
	return resp.Suggestions, nil
}
