package repository

import "time"

// ListOptions is a closed time range. Zero bounds are left open.
type ListOptions struct {
	Start time.Time
	End   time.Time
	Limit int
}

type CreateOptions struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Attendees   []string
}

type SyncResult struct {
	Message string
	Synced  int
}
