package google

import (
	"context"
	"fmt"

	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/internal/model"
	"productivity-assistant/pkg/gcalendar"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.Event, error) {
	events, err := r.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    opt.Start,
		TimeMax:    opt.End,
		MaxResults: int64(opt.Limit),
	})
	if err != nil {
		return nil, fmt.Errorf("calendar.google.ListEvents: %w", err)
	}
	return toDomain(events), nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateOptions) (model.Event, error) {
	ev, err := r.api.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:  r.cfg.CalendarID,
		Summary:     opt.Title,
		Description: opt.Description,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Location:    opt.Location,
		Attendees:   opt.Attendees,
		Timezone:    r.cfg.Timezone,
	})
	if err != nil {
		return model.Event{}, fmt.Errorf("calendar.google.CreateEvent: %w", err)
	}
	return toModel(*ev), nil
}

func (r *implRepository) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	events, err := r.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    r.now(),
		MaxResults: int64(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("calendar.google.Upcoming: %w", err)
	}
	return toDomain(events), nil
}

// Sync has nothing to copy since Google is the source of truth. It checks
// the calendar is reachable and reports how many events lie ahead.
func (r *implRepository) Sync(ctx context.Context) (repository.SyncResult, error) {
	now := r.now()
	events, err := r.api.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: r.cfg.CalendarID,
		TimeMin:    now,
		TimeMax:    now.Add(r.cfg.SyncHorizon),
	})
	if err != nil {
		return repository.SyncResult{}, fmt.Errorf("calendar.google.Sync: %w", err)
	}
	return repository.SyncResult{
		Message: "Google Calendar is up to date",
		Synced:  len(events),
	}, nil
}

func toModel(ev gcalendar.Event) model.Event {
	return model.Event{
		ID:          ev.ID,
		Title:       ev.Summary,
		Description: ev.Description,
		StartTime:   ev.StartTime,
		EndTime:     ev.EndTime,
		Location:    ev.Location,
		Attendees:   ev.Attendees,
		Link:        ev.HtmlLink,
		AllDay:      ev.AllDay,
	}
}

func toDomain(events []gcalendar.Event) []model.Event {
	out := make([]model.Event, 0, len(events))
	for _, ev := range events {
		out = append(out, toModel(ev))
	}
	return out
}
