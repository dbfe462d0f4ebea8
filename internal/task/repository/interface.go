package repository

import (
	"context"

	"productivity-assistant/internal/model"
)

// Repository is the backend task API.
type Repository interface {
	ListTasks(ctx context.Context, opt ListOptions) ([]model.Task, error)
	GetTask(ctx context.Context, id int64) (model.Task, error)
	CreateTask(ctx context.Context, opt CreateOptions) (model.Task, error)
	UpdateTask(ctx context.Context, opt UpdateOptions) (model.Task, error)
	DeleteTask(ctx context.Context, id int64) error
}
