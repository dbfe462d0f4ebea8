package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// Repository is a calendar provider.
type Repository interface {
	ListEvents(ctx context.Context, opt ListOptions) ([]model.Event, error)
	CreateEvent(ctx context.Context, opt CreateOptions) (model.Event, error)
	// Upcoming returns the next events from now on, soonest first.
	Upcoming(ctx context.Context, limit int) ([]model.Event, error)
	Sync(ctx context.Context) (SyncResult, error)
}
