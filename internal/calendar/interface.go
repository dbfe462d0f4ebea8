package calendar

import (
	"context"

	"productivity-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) ([]model.Event, error)
	Create(ctx context.Context, input CreateInput) (model.Event, error)
	Upcoming(ctx context.Context, limit int) ([]model.Event, error)
	Sync(ctx context.Context) (SyncOutput, error)
}
