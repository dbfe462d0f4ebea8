package rest

import (
	"time"

	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/apiclient"
)

// eventDTO is the backend EventResponse shape.
type eventDTO struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   apiclient.Time `json:"start_time"`
	EndTime     apiclient.Time `json:"end_time"`
	Location    string         `json:"location"`
	Attendees   []string       `json:"attendees"`
}

func (d eventDTO) toDomain() model.Event {
	return model.Event{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		StartTime:   d.StartTime.Time,
		EndTime:     d.EndTime.Time,
		Location:    d.Location,
		Attendees:   d.Attendees,
	}
}

type createReq struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Location    string    `json:"location,omitempty"`
	Attendees   []string  `json:"attendees,omitempty"`
}

type upcomingResp struct {
	Events  []eventDTO `json:"events"`
	Message string     `json:"message"`
}

type syncResp struct {
	Message      string `json:"message"`
	EventsSynced int    `json:"events_synced"`
}

func toDomain(dtos []eventDTO) []model.Event {
	events := make([]model.Event, 0, len(dtos))
	for _, d := range dtos {
		events = append(events, d.toDomain())
	}
	return events
}
