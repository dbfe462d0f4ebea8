package http

import (
	"strings"
	"time"

	"productivity-assistant/internal/checklist"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/task"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Status   string `form:"status"   binding:"omitempty,oneof=todo in_progress completed cancelled"`
	Priority string `form:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Category string `form:"category"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

func (r listReq) toInput() task.ListInput {
	return task.ListInput{
		Status:   model.TaskStatus(r.Status),
		Priority: model.TaskPriority(r.Priority),
		Category: r.Category,
		Limit:    r.Limit,
		Offset:   r.Offset,
	}
}

type createReq struct {
	Title        string     `json:"title"         binding:"required,max=255"`
	Description  string     `json:"description"   binding:"max=2000"`
	Priority     string     `json:"priority"      binding:"omitempty,oneof=low medium high urgent"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	Tags         string     `json:"tags"`
	Category     string     `json:"category"`
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:        r.Title,
		Description:  r.Description,
		Priority:     model.TaskPriority(r.Priority),
		DueDate:      r.DueDate,
		ReminderDate: r.ReminderDate,
		Tags:         r.Tags,
		Category:     r.Category,
	}
}

type checkItemReq struct {
	Checked *bool `json:"checked" binding:"required"`
}

type updateReq struct {
	ID           int64      `json:"-"` // populated from URI param
	Title        *string    `json:"title"         binding:"omitempty,max=255"`
	Description  *string    `json:"description"   binding:"omitempty,max=2000"`
	Priority     *string    `json:"priority"      binding:"omitempty,oneof=low medium high urgent"`
	Status       *string    `json:"status"        binding:"omitempty,oneof=todo in_progress completed cancelled"`
	DueDate      *time.Time `json:"due_date"`
	ReminderDate *time.Time `json:"reminder_date"`
	Tags         *string    `json:"tags"`
	Category     *string    `json:"category"`
}

func (r updateReq) toInput() task.UpdateInput {
	in := task.UpdateInput{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		DueDate:      r.DueDate,
		ReminderDate: r.ReminderDate,
		Tags:         r.Tags,
		Category:     r.Category,
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		in.Priority = &p
	}
	if r.Status != nil {
		s := model.TaskStatus(*r.Status)
		in.Status = &s
	}
	return in
}

// --- Response DTOs ---

type taskResp struct {
	ID                int64              `json:"id"`
	Title             string             `json:"title"`
	Description       string             `json:"description,omitempty"`
	Priority          string             `json:"priority"`
	Status            string             `json:"status"`
	DueDate           *response.DateTime `json:"due_date,omitempty"`
	ReminderDate      *response.DateTime `json:"reminder_date,omitempty"`
	Tags              []string           `json:"tags,omitempty"`
	Category          string             `json:"category,omitempty"`
	AISuggested       bool               `json:"ai_suggested"`
	EstimatedDuration int                `json:"estimated_duration,omitempty"`
	CreatedAt         response.DateTime  `json:"created_at"`
	CompletedAt       *response.DateTime `json:"completed_at,omitempty"`
	Checklist         *checklistResp     `json:"checklist,omitempty"`
}

type checklistResp struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Progress  float64 `json:"progress"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                t.ID,
		Title:             t.Title,
		Description:       t.Description,
		Priority:          string(t.Priority),
		Status:            string(t.Status),
		DueDate:           dateTimePtr(t.DueDate),
		ReminderDate:      dateTimePtr(t.ReminderDate),
		Tags:              splitTags(t.Tags),
		Category:          t.Category,
		AISuggested:       t.AISuggested,
		EstimatedDuration: t.EstimatedDuration,
		CreatedAt:         response.DateTime(t.CreatedAt),
		CompletedAt:       dateTimePtr(t.CompletedAt),
	}
	if p := checklist.Stats(t.Description); p.Total > 0 {
		resp.Checklist = &checklistResp{Total: p.Total, Completed: p.Completed, Progress: p.Percent()}
	}
	return resp
}

type listResp struct {
	Tasks  []taskResp `json:"tasks"`
	Limit  int        `json:"limit"`
	Offset int        `json:"offset"`
}

func newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, t := range out.Tasks {
		tasks[i] = newTaskResp(t)
	}
	return listResp{Tasks: tasks, Limit: out.Limit, Offset: out.Offset}
}

func dateTimePtr(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	d := response.DateTime(*t)
	return &d
}

func splitTags(tags string) []string {
	if tags == "" {
		return nil
	}
	return strings.Split(tags, ",")
}
