package usecase

import (
	"context"
	"strings"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
)

// Create adds a task. Priority defaults to medium.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}

	priority := input.Priority
	if priority == "" {
		priority = model.TaskPriorityMedium
	}
	if !priority.IsValid() {
		return model.Task{}, task.ErrInvalidPriority
	}

	t, err := uc.repo.CreateTask(ctx, repository.CreateOptions{
		Title:        title,
		Description:  strings.TrimSpace(input.Description),
		Priority:     priority,
		DueDate:      input.DueDate,
		ReminderDate: input.ReminderDate,
		Tags:         normalizeTags(input.Tags),
		Category:     strings.TrimSpace(input.Category),
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: %v", err)
		return model.Task{}, err
	}

	uc.l.Infof(ctx, "task.usecase.Create: id=%d title=%q", t.ID, t.Title)
	return t, nil
}
