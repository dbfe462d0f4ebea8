package suggestion

import (
	"time"

	"productivity-assistant/internal/model"
)

// Kind is the backend's suggestion type.
type Kind string

const (
	KindTask    Kind = "task"
	KindEvent   Kind = "event"
	KindEmail   Kind = "email"
	KindGeneral Kind = "general"
)

// ParseKind normalizes a backend type. "calendar" is an alias of event;
// unknown types are general.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindTask, KindEvent, KindEmail, KindGeneral:
		return Kind(s)
	case "calendar":
		return KindEvent
	default:
		return KindGeneral
	}
}

// Suggestion is a proactive action offered by the assistant.
type Suggestion struct {
	ID          string
	Kind        Kind
	Title       string
	Description string
	Action      string
	Priority    string
	CreatedAt   time.Time
	ExpiresAt   *time.Time
	Payload     Payload
}

// Payload is what accepting a suggestion does. It is one of TaskPayload,
// EventPayload or GenericPayload.
type Payload interface {
	payload()
}

// TaskPayload creates a task when accepted.
type TaskPayload struct {
	Title       string
	Description string
	Priority    model.TaskPriority
	DueDate     *time.Time
	Tags        string
	Category    string
}

// EventPayload creates a calendar event when accepted.
type EventPayload struct {
	Title       string
	Description string
	StartTime   time.Time
	EndTime     time.Time
	Location    string
	Attendees   []string
}

// GenericPayload only acknowledges the suggestion.
type GenericPayload struct {
	Action string
}

func (TaskPayload) payload()    {}
func (EventPayload) payload()   {}
func (GenericPayload) payload() {}

// --- UseCase Inputs / Outputs ---

type ListInput struct {
	Kind  Kind
	Limit int
}

type ListOutput struct {
	Suggestions []Suggestion
	Total       int
}

// AcceptOutput reports what accepting did. At most one of Task and Event is set.
type AcceptOutput struct {
	Message     string
	ActionTaken string
	Task        *model.Task
	Event       *model.Event
}

type GenerateOutput struct {
	Message string
	Count   int
	Titles  []string
}
