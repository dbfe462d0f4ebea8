package http

import (
	"time"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/response"
)

// --- Request DTOs ---

type listReq struct {
	Start  time.Time `form:"start"  time_format:"2006-01-02T15:04:05Z07:00"`
	End    time.Time `form:"end"    time_format:"2006-01-02T15:04:05Z07:00"`
	Window string    `form:"window"`
	Limit  int       `form:"limit"`
}

func (r listReq) toInput() calendar.ListInput {
	return calendar.ListInput{Start: r.Start, End: r.End, Window: r.Window, Limit: r.Limit}
}

type upcomingReq struct {
	Limit int `form:"limit"`
}

type createReq struct {
	Title       string    `json:"title"       binding:"required,max=255"`
	Description string    `json:"description" binding:"max=2000"`
	StartTime   time.Time `json:"start_time"  binding:"required"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location"`
	Attendees   []string  `json:"attendees"`
}

func (r createReq) toInput() calendar.CreateInput {
	return calendar.CreateInput{
		Title:       r.Title,
		Description: r.Description,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Location:    r.Location,
		Attendees:   r.Attendees,
	}
}

// --- Response DTOs ---

type eventResp struct {
	ID          string            `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description,omitempty"`
	StartTime   response.DateTime `json:"start_time"`
	EndTime     response.DateTime `json:"end_time"`
	Location    string            `json:"location,omitempty"`
	Attendees   []string          `json:"attendees,omitempty"`
	Link        string            `json:"link,omitempty"`
	AllDay      bool              `json:"all_day,omitempty"`
	Date        *response.Date    `json:"date,omitempty"`
}

func newEventResp(ev model.Event) eventResp {
	resp := eventResp{
		ID:          ev.ID,
		Title:       ev.Title,
		Description: ev.Description,
		StartTime:   response.DateTime(ev.StartTime),
		EndTime:     response.DateTime(ev.EndTime),
		Location:    ev.Location,
		Attendees:   ev.Attendees,
		Link:        ev.Link,
		AllDay:      ev.AllDay,
	}
	if ev.AllDay {
		d := response.Date(ev.StartTime)
		resp.Date = &d
	}
	return resp
}

type eventsResp struct {
	Events []eventResp `json:"events"`
}

func newEventsResp(events []model.Event) eventsResp {
	resp := eventsResp{Events: make([]eventResp, len(events))}
	for i, ev := range events {
		resp.Events[i] = newEventResp(ev)
	}
	return resp
}

type syncResp struct {
	Message string `json:"message"`
	Synced  int    `json:"events_synced"`
}
