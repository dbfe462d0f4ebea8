package repository

import (
	"time"

	"productivity-assistant/internal/model"
)

// ListOptions filters GET /tasks. Zero values are omitted.
type ListOptions struct {
	Status   model.TaskStatus
	Priority model.TaskPriority
	Category string
	Limit    int // backend default 50
	Offset   int
}

type CreateOptions struct {
	Title        string
	Description  string
	Priority     model.TaskPriority
	DueDate      *time.Time
	ReminderDate *time.Time
	Tags         string
	Category     string
}

// UpdateOptions is sent as a partial body; nil fields are omitted.
type UpdateOptions struct {
	ID           int64
	Title        *string
	Description  *string
	Priority     *model.TaskPriority
	Status       *model.TaskStatus
	DueDate      *time.Time
	ReminderDate *time.Time
	Tags         *string
	Category     *string
}
