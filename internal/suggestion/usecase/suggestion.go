package usecase

import (
	"context"
	"fmt"
	"strings"

	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/suggestion/repository"
)

func (uc *implUseCase) List(ctx context.Context, input suggestion.ListInput) (suggestion.ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	res, err := uc.repo.List(ctx, repository.ListOptions{Kind: input.Kind, Limit: limit})
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.List: %v", err)
		return suggestion.ListOutput{}, err
	}

	for _, s := range res.Suggestions {
		uc.seen.Add(s.ID, s)
	}
	return suggestion.ListOutput{Suggestions: res.Suggestions, Total: res.Total}, nil
}

// Accept needs the suggestion's payload, so an id that was never listed
// triggers one refresh before giving up with ErrSuggestionNotFound.
func (uc *implUseCase) Accept(ctx context.Context, id string) (suggestion.AcceptOutput, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return suggestion.AcceptOutput{}, suggestion.ErrEmptyID
	}

	s, err := uc.lookup(ctx, id)
	if err != nil {
		return suggestion.AcceptOutput{}, err
	}

	res, err := uc.repo.Accept(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Accept: %v", err)
		return suggestion.AcceptOutput{}, err
	}
	uc.seen.Remove(id)

	out := suggestion.AcceptOutput{Message: res.Message, ActionTaken: res.ActionTaken}
	if err := uc.dispatch(ctx, s, &out); err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Accept: id=%s: %v", id, err)
		return out, fmt.Errorf("%w: %w", suggestion.ErrActionFailed, err)
	}

	uc.l.Infof(ctx, "suggestion.usecase.Accept: id=%s kind=%s action=%q", id, s.Kind, out.ActionTaken)
	return out, nil
}

func (uc *implUseCase) Dismiss(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return suggestion.ErrEmptyID
	}
	if err := uc.repo.Dismiss(ctx, id); err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Dismiss: %v", err)
		return err
	}
	uc.seen.Remove(id)
	return nil
}

// Generate asks the backend for fresh suggestions. Remembered ones are
// dropped since the backend may have replaced them.
func (uc *implUseCase) Generate(ctx context.Context) (suggestion.GenerateOutput, error) {
	res, err := uc.repo.Generate(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "suggestion.usecase.Generate: %v", err)
		return suggestion.GenerateOutput{}, err
	}
	uc.seen.Purge()
	return suggestion.GenerateOutput{Message: res.Message, Count: res.Count, Titles: res.Titles}, nil
}

func (uc *implUseCase) lookup(ctx context.Context, id string) (suggestion.Suggestion, error) {
	if s, ok := uc.seen.Get(id); ok {
		return s, nil
	}
	if _, err := uc.List(ctx, suggestion.ListInput{Limit: lookupLimit}); err != nil {
		return suggestion.Suggestion{}, err
	}
	if s, ok := uc.seen.Get(id); ok {
		return s, nil
	}
	return suggestion.Suggestion{}, suggestion.ErrSuggestionNotFound
}
