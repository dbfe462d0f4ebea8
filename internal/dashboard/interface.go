package dashboard

import (
	"context"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/task"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Get loads all sections concurrently. It fails only when none loaded.
	Get(ctx context.Context, input GetInput) (Dashboard, error)
	// Invalidate drops cached dashboards.
	Invalidate()
}

type TaskLister interface {
	List(ctx context.Context, input task.ListInput) (task.ListOutput, error)
}

type EventLister interface {
	List(ctx context.Context, input calendar.ListInput) ([]model.Event, error)
	Upcoming(ctx context.Context, limit int) ([]model.Event, error)
}

type EmailLister interface {
	Recent(ctx context.Context, limit int) ([]model.Email, error)
}

type SuggestionLister interface {
	List(ctx context.Context, input suggestion.ListInput) (suggestion.ListOutput, error)
}

// Sources are the workspace clients the dashboard reads from.
type Sources struct {
	Tasks       TaskLister
	Events      EventLister
	Emails      EmailLister
	Suggestions SuggestionLister
}
