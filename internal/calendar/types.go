package calendar

import "time"

// Provider names the calendar backend.
type Provider string

const (
	ProviderREST   Provider = "rest"
	ProviderGoogle Provider = "google"
)

// --- UseCase Inputs ---

// ListInput selects events either by an explicit range or by a relative
// window such as "today", "tomorrow", "next 7 days". Start/End win over Window.
type ListInput struct {
	Start  time.Time
	End    time.Time
	Window string
	Limit  int
}

type CreateInput struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time // defaults to StartTime + DefaultEventDuration
	Location    string
	Attendees   []string
}

// --- UseCase Outputs ---

type SyncOutput struct {
	Message string
	Synced  int
}

// DefaultEventDuration is used when an event is created without an end time.
const DefaultEventDuration = time.Hour
