package google

import (
	"context"
	"time"

	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/pkg/gcalendar"
	pkgLog "productivity-assistant/pkg/log"
)

const defaultSyncHorizon = 30 * 24 * time.Hour

// EventsAPI is the part of the Google Calendar client the provider uses.
type EventsAPI interface {
	ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error)
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
}

// Config selects the calendar and the timezone events are written in.
type Config struct {
	CalendarID  string
	Timezone    string
	SyncHorizon time.Duration
}

type implRepository struct {
	l   pkgLog.Logger
	api EventsAPI
	cfg Config
	now func() time.Time
}

// New creates a calendar repository that talks to Google Calendar directly.
func New(l pkgLog.Logger, api EventsAPI, cfg Config) repository.Repository {
	if cfg.CalendarID == "" {
		cfg.CalendarID = "primary"
	}
	if cfg.SyncHorizon <= 0 {
		cfg.SyncHorizon = defaultSyncHorizon
	}
	return &implRepository{l: l, api: api, cfg: cfg, now: time.Now}
}
