package rest

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/internal/model"
)

func (r *implRepository) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.Event, error) {
	q := url.Values{}
	if !opt.Start.IsZero() {
		q.Set("start_date", opt.Start.Format(time.RFC3339))
	}
	if !opt.End.IsZero() {
		q.Set("end_date", opt.End.Format(time.RFC3339))
	}
	if opt.Limit > 0 {
		q.Set("limit", strconv.Itoa(opt.Limit))
	}

	var resp []eventDTO
	if err := r.client.Get(ctx, "/calendar/events", q, &resp); err != nil {
		return nil, fmt.Errorf("calendar.rest.ListEvents: %w", err)
	}
	return toDomain(resp), nil
}

func (r *implRepository) CreateEvent(ctx context.Context, opt repository.CreateOptions) (model.Event, error) {
	body := createReq{
		Title:       opt.Title,
		Description: opt.Description,
		StartTime:   opt.StartTime,
		EndTime:     opt.EndTime,
		Location:    opt.Location,
		Attendees:   opt.Attendees,
	}

	var resp eventDTO
	if err := r.client.Post(ctx, "/calendar/events", body, &resp); err != nil {
		return model.Event{}, fmt.Errorf("calendar.rest.CreateEvent: %w", err)
	}
	return resp.toDomain(), nil
}

func (r *implRepository) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}

	var resp upcomingResp
	if err := r.client.Get(ctx, "/calendar/upcoming", q, &resp); err != nil {
		return nil, fmt.Errorf("calendar.rest.Upcoming: %w", err)
	}
	return toDomain(resp.Events), nil
}

func (r *implRepository) Sync(ctx context.Context) (repository.SyncResult, error) {
	var resp syncResp
	if err := r.client.Get(ctx, "/calendar/sync", nil, &resp); err != nil {
		return repository.SyncResult{}, fmt.Errorf("calendar.rest.Sync: %w", err)
	}
	r.l.Infof(ctx, "calendar.rest.Sync: %s (%d events)", resp.Message, resp.EventsSynced)
	return repository.SyncResult{Message: resp.Message, Synced: resp.EventsSynced}, nil
}
