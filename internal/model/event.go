package model

import "time"

// Event is a calendar entry.
type Event struct {
	ID          string
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Attendees   []string
	Link        string
	AllDay      bool
}
