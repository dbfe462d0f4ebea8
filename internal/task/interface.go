package task

import (
	"context"

	"productivity-assistant/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Create(ctx context.Context, input CreateInput) (model.Task, error)
	Detail(ctx context.Context, id int64) (model.Task, error)
	Update(ctx context.Context, input UpdateInput) (model.Task, error)
	Delete(ctx context.Context, id int64) error
	// Toggle flips a task between completed and todo.
	Toggle(ctx context.Context, id int64) (model.Task, error)
	// CheckItem updates a checklist item in the description. Checking the
	// last open item completes the task.
	CheckItem(ctx context.Context, input CheckItemInput) (model.Task, error)
}
