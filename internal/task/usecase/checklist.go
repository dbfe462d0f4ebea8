package usecase

import (
	"context"
	"errors"

	"productivity-assistant/internal/checklist"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task"
	"productivity-assistant/internal/task/repository"
)

func (uc *implUseCase) CheckItem(ctx context.Context, input task.CheckItemInput) (model.Task, error) {
	if input.Index < 0 {
		return model.Task{}, task.ErrInvalidIndex
	}

	current, err := uc.Detail(ctx, input.ID)
	if err != nil {
		return model.Task{}, err
	}

	desc, err := checklist.Set(current.Description, input.Index, input.Checked)
	if err != nil {
		if errors.Is(err, checklist.ErrItemNotFound) {
			return model.Task{}, task.ErrNoChecklistItem
		}
		return model.Task{}, err
	}

	opt := repository.UpdateOptions{ID: input.ID, Description: &desc}
	if input.Checked && current.IsOpen() && checklist.Stats(desc).Done() {
		done := model.TaskStatusCompleted
		opt.Status = &done
		uc.l.Infof(ctx, "task.usecase.CheckItem: id=%d checklist complete", input.ID)
	}

	t, err := uc.repo.UpdateTask(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.CheckItem: %v", err)
		return model.Task{}, notFound(err)
	}
	return t, nil
}
