package task

import (
	"time"

	"productivity-assistant/internal/model"
)

// --- UseCase Inputs ---

type ListInput struct {
	Status   model.TaskStatus
	Priority model.TaskPriority
	Category string
	Limit    int
	Offset   int
}

type CreateInput struct {
	Title        string
	Description  string
	Priority     model.TaskPriority
	DueDate      *time.Time
	ReminderDate *time.Time
	Tags         string
	Category     string
}

// UpdateInput carries a partial update. Nil fields are left untouched.
type UpdateInput struct {
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

// CheckItemInput sets one markdown checkbox of the task description.
type CheckItemInput struct {
	ID      int64
	Index   int
	Checked bool
}

// --- UseCase Outputs ---

type ListOutput struct {
	Tasks  []model.Task
	Limit  int
	Offset int
}
