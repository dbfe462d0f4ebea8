package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task/repository"
)

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListOptions) ([]model.Task, error) {
	q := url.Values{}
	if opt.Status != "" {
		q.Set("status", string(opt.Status))
	}
	if opt.Priority != "" {
		q.Set("priority", string(opt.Priority))
	}
	if opt.Category != "" {
		q.Set("category", opt.Category)
	}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}
	if opt.Offset > 0 {
		q.Set("offset", strconv.Itoa(opt.Offset))
	}

	var resp []taskDTO
	if err := r.client.Get(ctx, "/tasks", q, &resp); err != nil {
		return nil, fmt.Errorf("task.rest.ListTasks: %w", err)
	}

	tasks := make([]model.Task, 0, len(resp))
	for _, d := range resp {
		tasks = append(tasks, d.toDomain())
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, id int64) (model.Task, error) {
	var resp taskDTO
	if err := r.client.Get(ctx, taskPath(id), nil, &resp); err != nil {
		return model.Task{}, fmt.Errorf("task.rest.GetTask: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateOptions) (model.Task, error) {
	var resp taskDTO
	if err := r.client.Post(ctx, "/tasks", newCreateReq(opt), &resp); err != nil {
		return model.Task{}, fmt.Errorf("task.rest.CreateTask: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateOptions) (model.Task, error) {
	var resp taskDTO
	if err := r.client.Put(ctx, taskPath(opt.ID), newUpdateReq(opt), &resp); err != nil {
		return model.Task{}, fmt.Errorf("task.rest.UpdateTask: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) DeleteTask(ctx context.Context, id int64) error {
	if err := r.client.Delete(ctx, taskPath(id), nil); err != nil {
		return fmt.Errorf("task.rest.DeleteTask: %w", err)
	}
	return nil
}

func taskPath(id int64) string {
	return "/tasks/" + strconv.FormatInt(id, 10)
}
