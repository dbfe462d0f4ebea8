package suggestion

import (
	"context"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	// Accept confirms the suggestion with the backend, then carries out its payload.
	Accept(ctx context.Context, id string) (AcceptOutput, error)
	Dismiss(ctx context.Context, id string) error
	Generate(ctx context.Context) (GenerateOutput, error)
}

// TaskCreator creates the task of an accepted TaskPayload.
type TaskCreator interface {
	Create(ctx context.Context, input task.CreateInput) (model.Task, error)
}

// EventCreator creates the event of an accepted EventPayload.
type EventCreator interface {
	Create(ctx context.Context, input calendar.CreateInput) (model.Event, error)
}
