package http

import (
	"time"

	"productivity-assistant/internal/suggestion"
	"productivity-assistant/pkg/response"
)

type listReq struct {
	Type  string `form:"type"`
	Limit int    `form:"limit"`
}

func (r listReq) toInput() suggestion.ListInput {
	in := suggestion.ListInput{Limit: r.Limit}
	if r.Type != "" {
		in.Kind = suggestion.ParseKind(r.Type)
	}
	return in
}

// payloadResp flattens the payload variant; Kind tells which fields apply.
type payloadResp struct {
	Kind        string             `json:"kind"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Priority    string             `json:"priority,omitempty"`
	DueDate     *response.DateTime `json:"due_date,omitempty"`
	Tags        string             `json:"tags,omitempty"`
	Category    string             `json:"category,omitempty"`
	StartTime   *response.DateTime `json:"start_time,omitempty"`
	EndTime     *response.DateTime `json:"end_time,omitempty"`
	Location    string             `json:"location,omitempty"`
	Attendees   []string           `json:"attendees,omitempty"`
	Action      string             `json:"action,omitempty"`
}

func newPayloadResp(p suggestion.Payload) payloadResp {
	switch v := p.(type) {
	case suggestion.TaskPayload:
		return payloadResp{
			Kind:        "create_task",
			Title:       v.Title,
			Description: v.Description,
			Priority:    string(v.Priority),
			DueDate:     dateTimePtr(v.DueDate),
			Tags:        v.Tags,
			Category:    v.Category,
		}
	case suggestion.EventPayload:
		return payloadResp{
			Kind:        "create_event",
			Title:       v.Title,
			Description: v.Description,
			StartTime:   dateTimePtr(&v.StartTime),
			EndTime:     dateTimePtr(&v.EndTime),
			Location:    v.Location,
			Attendees:   v.Attendees,
		}
	case suggestion.GenericPayload:
		return payloadResp{Kind: "generic", Action: v.Action}
	default:
		return payloadResp{Kind: "generic"}
	}
}

type suggestionResp struct {
	ID          string             `json:"id"`
	Type        string             `json:"type"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Action      string             `json:"action"`
	Priority    string             `json:"priority"`
	CreatedAt   response.DateTime  `json:"created_at"`
	ExpiresAt   *response.DateTime `json:"expires_at,omitempty"`
	Payload     payloadResp        `json:"payload"`
}

func newSuggestionResp(s suggestion.Suggestion) suggestionResp {
	return suggestionResp{
		ID:          s.ID,
		Type:        string(s.Kind),
		Title:       s.Title,
		Description: s.Description,
		Action:      s.Action,
		Priority:    s.Priority,
		CreatedAt:   response.DateTime(s.CreatedAt),
		ExpiresAt:   dateTimePtr(s.ExpiresAt),
		Payload:     newPayloadResp(s.Payload),
	}
}

type listResp struct {
	Suggestions []suggestionResp `json:"suggestions"`
	Total       int              `json:"total"`
}

func newListResp(out suggestion.ListOutput) listResp {
	resp := listResp{Suggestions: make([]suggestionResp, len(out.Suggestions)), Total: out.Total}
	for i, s := range out.Suggestions {
		resp.Suggestions[i] = newSuggestionResp(s)
	}
	return resp
}

type acceptResp struct {
	Message     string `json:"message"`
	ActionTaken string `json:"action_taken"`
	TaskID      int64  `json:"task_id,omitempty"`
	EventID     string `json:"event_id,omitempty"`
}

func newAcceptResp(out suggestion.AcceptOutput) acceptResp {
	resp := acceptResp{Message: out.Message, ActionTaken: out.ActionTaken}
	if out.Task != nil {
		resp.TaskID = out.Task.ID
	}
	if out.Event != nil {
		resp.EventID = out.Event.ID
	}
	return resp
}

type generateResp struct {
	Message string   `json:"message"`
	Count   int      `json:"count"`
	Titles  []string `json:"suggestions_generated"`
}

func dateTimePtr(t *time.Time) *response.DateTime {
	if t == nil || t.IsZero() {
		return nil
	}
	d := response.DateTime(*t)
	return &d
}
