package http

import (
	"strings"

	"productivity-assistant/internal/dashboard"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/pkg/response"
)

type getReq struct {
	Window  string `form:"window"`
	Refresh bool   `form:"refresh"`
}

func (r getReq) toInput() dashboard.GetInput {
	return dashboard.GetInput{Window: r.Window, Refresh: r.Refresh}
}

type sectionResp[T any] struct {
	Items []T    `json:"items"`
	Error string `json:"error,omitempty"`
}

func newSectionResp[S, T any](s dashboard.Section[S], conv func(S) T) sectionResp[T] {
	if !s.OK() {
		return sectionResp[T]{Items: []T{}, Error: s.Err}
	}
	items := make([]T, len(s.Items))
	for i, it := range s.Items {
		items[i] = conv(it)
	}
	return sectionResp[T]{Items: items}
}

type taskItem struct {
	ID       int64              `json:"id"`
	Title    string             `json:"title"`
	Priority string             `json:"priority"`
	Status   string             `json:"status"`
	DueDate  *response.DateTime `json:"due_date,omitempty"`
	Overdue  bool               `json:"overdue"`
}

type eventItem struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	StartTime response.DateTime `json:"start_time"`
	EndTime   response.DateTime `json:"end_time"`
	Location  string            `json:"location,omitempty"`
	AllDay    bool              `json:"all_day,omitempty"`
}

type emailItem struct {
	ID      string            `json:"id"`
	Subject string            `json:"subject"`
	Sender  string            `json:"sender"`
	Date    response.DateTime `json:"date"`
	IsRead  bool              `json:"is_read"`
}

type suggestionItem struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Title    string `json:"title"`
	Priority string `json:"priority"`
}

type dashboardResp struct {
	Window      string                      `json:"window,omitempty"`
	From        *response.DateTime          `json:"from,omitempty"`
	To          *response.DateTime          `json:"to,omitempty"`
	Tasks       sectionResp[taskItem]       `json:"tasks"`
	Events      sectionResp[eventItem]      `json:"events"`
	Emails      sectionResp[emailItem]      `json:"emails"`
	Suggestions sectionResp[suggestionItem] `json:"suggestions"`
	FetchedAt   response.DateTime           `json:"fetched_at"`
	Cached      bool                        `json:"cached"`
}

func newDashboardResp(d dashboard.Dashboard) dashboardResp {
	resp := dashboardResp{
		Window: d.Window,
		Tasks: newSectionResp(d.Tasks, func(t model.Task) taskItem {
			item := taskItem{
				ID:       t.ID,
				Title:    t.Title,
				Priority: string(t.Priority),
				Status:   string(t.Status),
				Overdue:  t.DueDate != nil && t.IsOpen() && t.DueDate.Before(d.FetchedAt),
			}
			if t.DueDate != nil {
				due := response.DateTime(*t.DueDate)
				item.DueDate = &due
			}
			return item
		}),
		Events: newSectionResp(d.Events, func(ev model.Event) eventItem {
			return eventItem{
				ID:        ev.ID,
				Title:     ev.Title,
				StartTime: response.DateTime(ev.StartTime),
				EndTime:   response.DateTime(ev.EndTime),
				Location:  ev.Location,
				AllDay:    ev.AllDay,
			}
		}),
		Emails: newSectionResp(d.Emails, func(e model.Email) emailItem {
			return emailItem{
				ID:      e.ID,
				Subject: strings.TrimSpace(e.Subject),
				Sender:  e.Sender,
				Date:    response.DateTime(e.Date),
				IsRead:  e.IsRead,
			}
		}),
		Suggestions: newSectionResp(d.Suggestions, func(s suggestion.Suggestion) suggestionItem {
			return suggestionItem{ID: s.ID, Type: string(s.Kind), Title: s.Title, Priority: s.Priority}
		}),
		FetchedAt: response.DateTime(d.FetchedAt),
		Cached:    d.Cached,
	}
	if !d.From.IsZero() {
		from, to := response.DateTime(d.From), response.DateTime(d.To)
		resp.From, resp.To = &from, &to
	}
	return resp
}
