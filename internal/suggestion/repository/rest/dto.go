package rest

import (
	"encoding/json"
	"fmt"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/pkg/apiclient"
)

type suggestionDTO struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Action      string          `json:"action"`
	Priority    string          `json:"priority"`
	CreatedAt   apiclient.Time  `json:"created_at"`
	ExpiresAt   apiclient.Time  `json:"expires_at"`
	Data        json.RawMessage `json:"data"`
}

type listResp struct {
	Suggestions []suggestionDTO `json:"suggestions"`
	Total       int             `json:"total"`
}

type acceptResp struct {
	Message     string `json:"message"`
	ActionTaken string `json:"action_taken"`
}

type generateResp struct {
	Message              string   `json:"message"`
	Count                int      `json:"count"`
	SuggestionsGenerated []string `json:"suggestions_generated"`
}

// taskData is the data object of a task suggestion, shaped like a task create body.
type taskData struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Priority    string         `json:"priority"`
	DueDate     apiclient.Time `json:"due_date"`
	Tags        string         `json:"tags"`
	Category    string         `json:"category"`
}

// eventData is the data object of an event suggestion, shaped like an event create body.
type eventData struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	StartTime   apiclient.Time `json:"start_time"`
	EndTime     apiclient.Time `json:"end_time"`
	Location    string         `json:"location"`
	Attendees   []string       `json:"attendees"`
}

func hasData(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null" && string(raw) != "{}"
}

// toDomain decodes the payload by type. A task or event suggestion
// without usable data degrades to a generic one.
func (d suggestionDTO) toDomain() (suggestion.Suggestion, error) {
	s := suggestion.Suggestion{
		ID:          d.ID,
		Kind:        suggestion.ParseKind(d.Type),
		Title:       d.Title,
		Description: d.Description,
		Action:      d.Action,
		Priority:    d.Priority,
		CreatedAt:   d.CreatedAt.Time,
		ExpiresAt:   d.ExpiresAt.Ptr(),
		Payload:     suggestion.GenericPayload{Action: d.Action},
	}
	if !hasData(d.Data) {
		return s, nil
	}

	switch s.Kind {
	case suggestion.KindTask:
		var td taskData
		if err := json.Unmarshal(d.Data, &td); err != nil {
			return s, fmt.Errorf("suggestion %s: invalid task data: %w", d.ID, err)
		}
		s.Payload = suggestion.TaskPayload{
			Title:       td.Title,
			Description: td.Description,
			Priority:    model.TaskPriority(td.Priority),
			DueDate:     td.DueDate.Ptr(),
			Tags:        td.Tags,
			Category:    td.Category,
		}
	case suggestion.KindEvent:
		var ed eventData
		if err := json.Unmarshal(d.Data, &ed); err != nil {
			return s, fmt.Errorf("suggestion %s: invalid event data: %w", d.ID, err)
		}
		if ed.StartTime.IsZero() {
			return s, nil
		}
		s.Payload = suggestion.EventPayload{
			Title:       ed.Title,
			Description: ed.Description,
			StartTime:   ed.StartTime.Time,
			EndTime:     ed.EndTime.Time,
			Location:    ed.Location,
			Attendees:   ed.Attendees,
		}
	}
	return s, nil
}
