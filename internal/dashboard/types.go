package dashboard

import (
	"time"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
)

// Section is one panel of the dashboard. Err is set instead of Items when
// the panel could not be loaded; other panels are unaffected.
type Section[T any] struct {
	Items []T
	Err   string
}

// OK reports whether the section loaded.
func (s Section[T]) OK() bool { return s.Err == "" }

// Dashboard is the chat page side panel.
type Dashboard struct {
	// Window is the relative events window; empty means upcoming events.
	Window      string
	From        time.Time
	To          time.Time
	Tasks       Section[model.Task]
	Events      Section[model.Event]
	Emails      Section[model.Email]
	Suggestions Section[suggestion.Suggestion]
	FetchedAt   time.Time
	// Cached is set when the dashboard was served from cache.
	Cached bool
}

// Complete reports whether every section loaded.
func (d Dashboard) Complete() bool {
	return d.Tasks.OK() && d.Events.OK() && d.Emails.OK() && d.Suggestions.OK()
}

type GetInput struct {
	Window  string
	Refresh bool
}
