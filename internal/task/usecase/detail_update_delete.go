package usecase

import (
	"context"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
)

// Detail retrieves a single task. Returns ErrTaskNotFound when the backend has none.
func (uc *implUseCase) Detail(ctx context.Context, id int64) (model.Task, error) {
	if id <= 0 {
		return model.Task{}, task.ErrInvalidID
	}

	t, err := uc.repo.GetTask(ctx, id)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Detail: %v", err)
		return model.Task{}, notFound(err)
	}
	return t, nil
}

// Update applies a partial update.
func (uc *implUseCase) Update(ctx context.Context, input task.UpdateInput) (model.Task, error) {
	if input.ID <= 0 {
		return model.Task{}, task.ErrInvalidID
	}
	if input.Status != nil && !input.Status.IsValid() {
		return model.Task{}, task.ErrInvalidStatus
	}
	if input.Priority != nil && !input.Priority.IsValid() {
		return model.Task{}, task.ErrInvalidPriority
	}
	if input.Title != nil && *input.Title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	opt := repository.UpdateOptions{
		ID:           input.ID,
		Title:        input.Title,
		Description:  input.Description,
		Priority:     input.Priority,
		Status:       input.Status,
		DueDate:      input.DueDate,
		ReminderDate: input.ReminderDate,
		Tags:         input.Tags,
		Category:     input.Category,
	}
	if opt.Tags != nil {
		tags := normalizeTags(*opt.Tags)
		opt.Tags = &tags
	}
	if isEmptyUpdate(opt) {
		return model.Task{}, task.ErrEmptyUpdate
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Update: %v", err)
		return model.Task{}, notFound(err)
	}
	return t, nil
}

// Delete removes a task.
func (uc *implUseCase) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return task.ErrInvalidID
	}
	if err := uc.repo.DeleteTask(ctx, id); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Delete: %v", err)
		return notFound(err)
	}
	uc.l.Infof(ctx, "task.usecase.Delete: id=%d", id)
	return nil
}

// Toggle marks an open task completed and a completed one todo again.
// Cancelled tasks count as open.
func (uc *implUseCase) Toggle(ctx context.Context, id int64) (model.Task, error) {
	current, err := uc.Detail(ctx, id)
	if err != nil {
		return model.Task{}, err
	}

	next := model.TaskStatusCompleted
	if current.Status == model.TaskStatusCompleted {
		next = model.TaskStatusTodo
	}

	t, err := uc.repo.UpdateTask(ctx, repository.UpdateOptions{ID: id, Status: &next})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Toggle: %v", err)
		return model.Task{}, notFound(err)
	}
	return t, nil
}
