package rest

import (
	"time"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task/repository"
	"productivity-assistant/pkg/apiclient"
)

// taskDTO is the backend TaskResponse shape.
type taskDTO struct {
	ID                int64          `json:"id"`
	Title             string         `json:"title"`
	Description       string         `json:"description"`
	Priority          string         `json:"priority"`
	Status            string         `json:"status"`
	DueDate           apiclient.Time `json:"due_date"`
	ReminderDate      apiclient.Time `json:"reminder_date"`
	CreatedAt         apiclient.Time `json:"created_at"`
	UpdatedAt         apiclient.Time `json:"updated_at"`
	CompletedAt       apiclient.Time `json:"completed_at"`
	Tags              string         `json:"tags"`
	Category          string         `json:"category"`
	AISuggested       bool           `json:"ai_suggested"`
	EstimatedDuration int            `json:"estimated_duration"`
}

func (d taskDTO) toDomain() model.Task {
	return model.Task{
		ID:                d.ID,
		Title:             d.Title,
		Description:       d.Description,
		Priority:          model.TaskPriority(d.Priority),
		Status:            model.TaskStatus(d.Status),
		DueDate:           d.DueDate.Ptr(),
		ReminderDate:      d.ReminderDate.Ptr(),
		Tags:              d.Tags,
		Category:          d.Category,
		AISuggested:       d.AISuggested,
		EstimatedDuration: d.EstimatedDuration,
		CreatedAt:         d.CreatedAt.Time,
		UpdatedAt:         d.UpdatedAt.Ptr(),
		CompletedAt:       d.CompletedAt.Ptr(),
	}
}

type createReq struct {
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Priority     string     `json:"priority,omitempty"`
	DueDate      *time.Time `json:"due_date,omitempty"`
	ReminderDate *time.Time `json:"reminder_date,omitempty"`
	Tags         string     `json:"tags,omitempty"`
	Category     string     `json:"category,omitempty"`
}

func newCreateReq(opt repository.CreateOptions) createReq {
	return createReq{
		Title:        opt.Title,
		Description:  opt.Description,
		Priority:     string(opt.Priority),
		DueDate:      opt.DueDate,
		ReminderDate: opt.ReminderDate,
		Tags:         opt.Tags,
		Category:     opt.Category,
	}
}

type updateReq struct {
	Title        *string             `json:"title,omitempty"`
	Description  *string             `json:"description,omitempty"`
	Priority     *model.TaskPriority `json:"priority,omitempty"`
	Status       *model.TaskStatus   `json:"status,omitempty"`
	DueDate      *time.Time          `json:"due_date,omitempty"`
	ReminderDate *time.Time          `json:"reminder_date,omitempty"`
	Tags         *string             `json:"tags,omitempty"`
	Category     *string             `json:"category,omitempty"`
}

func newUpdateReq(opt repository.UpdateOptions) updateReq {
	return updateReq{
		Title:        opt.Title,
		Description:  opt.Description,
		Priority:     opt.Priority,
		Status:       opt.Status,
		DueDate:      opt.DueDate,
		ReminderDate: opt.ReminderDate,
		Tags:         opt.Tags,
		Category:     opt.Category,
	}
}
