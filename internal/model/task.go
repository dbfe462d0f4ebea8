package model

import "time"

type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// IsValid reports whether s is a known status.
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	}
	return false
}

type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// IsValid reports whether p is a known priority.
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	}
	return false
}

// Task is a to-do item owned by the backend.
type Task struct {
	ID                int64
	Title             string
	Description       string
	Priority          TaskPriority
	Status            TaskStatus
	DueDate           *time.Time
	ReminderDate      *time.Time
	Tags              string
	Category          string
	AISuggested       bool
	EstimatedDuration int // minutes
	CreatedAt         time.Time
	UpdatedAt         *time.Time
	CompletedAt       *time.Time
}

// IsOpen reports whether the task still needs work.
func (t Task) IsOpen() bool {
	return t.Status == TaskStatusTodo || t.Status == TaskStatusInProgress
}
