package usecase

import (
	"context"

	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
)

// List returns the tasks matching the filters, newest first as the backend orders them.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	if input.Status != "" && !input.Status.IsValid() {
		return task.ListOutput{}, task.ErrInvalidStatus
	}
	if input.Priority != "" && !input.Priority.IsValid() {
		return task.ListOutput{}, task.ErrInvalidPriority
	}

	limit := input.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	offset := max(input.Offset, 0)

	tasks, err := uc.repo.ListTasks(ctx, repository.ListOptions{
		Status:   input.Status,
		Priority: input.Priority,
		Category: input.Category,
		Limit:    limit,
		Offset:   offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Limit: limit, Offset: offset}, nil
}
