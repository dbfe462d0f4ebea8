package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/suggestion/repository"
)

// List decodes every suggestion it can. One with malformed data is
// logged and kept as a generic suggestion.
func (r *implRepository) List(ctx context.Context, opt repository.ListOptions) (repository.ListResult, error) {
	q := url.Values{}
	if opt.Kind != "" {
		q.Set("type", string(opt.Kind))
	}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}

	var resp listResp
	if err := r.client.Get(ctx, "/suggestions", q, &resp); err != nil {
		return repository.ListResult{}, fmt.Errorf("suggestion.rest.List: %w", err)
	}

	out := repository.ListResult{
		Suggestions: make([]suggestion.Suggestion, 0, len(resp.Suggestions)),
		Total:       resp.Total,
	}
	for _, d := range resp.Suggestions {
		s, err := d.toDomain()
		if err != nil {
			r.l.Warnf(ctx, "suggestion.rest.List: %v", err)
		}
		out.Suggestions = append(out.Suggestions, s)
	}
	return out, nil
}

func (r *implRepository) Accept(ctx context.Context, id string) (repository.AcceptResult, error) {
	var resp acceptResp
	if err := r.client.Post(ctx, "/suggestions/"+url.PathEscape(id)+"/accept", nil, &resp); err != nil {
		return repository.AcceptResult{}, fmt.Errorf("suggestion.rest.Accept: %w", err)
	}
	return repository.AcceptResult{Message: resp.Message, ActionTaken: resp.ActionTaken}, nil
}

func (r *implRepository) Dismiss(ctx context.Context, id string) error {
	if err := r.client.Delete(ctx, "/suggestions/"+url.PathEscape(id), nil); err != nil {
		return fmt.Errorf("suggestion.rest.Dismiss: %w", err)
	}
	return nil
}

func (r *implRepository) Generate(ctx context.Context) (repository.GenerateResult, error) {
	var resp generateResp
	if err := r.client.Post(ctx, "/suggestions/generate", nil, &resp); err != nil {
		return repository.GenerateResult{}, fmt.Errorf("suggestion.rest.Generate: %w", err)
	}
	return repository.GenerateResult{
		Message: resp.Message,
		Count:   resp.Count,
		Titles:  resp.SuggestionsGenerated,
	}, nil
}
