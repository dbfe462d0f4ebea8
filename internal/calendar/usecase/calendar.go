package usecase

import (
	"context"
	"net/mail"
	"strings"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/internal/model"
)

// List returns the events of an explicit range, or of a relative window
// resolved in the configured timezone. With neither, it lists today.
func (uc *implUseCase) List(ctx context.Context, input calendar.ListInput) ([]model.Event, error) {
	opt := repository.ListOptions{Start: input.Start, End: input.End, Limit: input.Limit}
	if opt.Limit <= 0 {
		opt.Limit = defaultListLimit
	}

	if opt.Start.IsZero() && opt.End.IsZero() {
		window, err := uc.dateMath.Window(input.Window, uc.now())
		if err != nil {
			return nil, err
		}
		opt.Start, opt.End = window.Start, window.End
	}
	if !opt.Start.IsZero() && !opt.End.IsZero() && opt.End.Before(opt.Start) {
		return nil, calendar.ErrInvalidRange
	}

	events, err := uc.repo.ListEvents(ctx, opt)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.List: %v", err)
		return nil, err
	}
	return events, nil
}

// Create validates and adds an event.
func (uc *implUseCase) Create(ctx context.Context, input calendar.CreateInput) (model.Event, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Event{}, calendar.ErrEmptyTitle
	}
	if input.StartTime.IsZero() {
		return model.Event{}, calendar.ErrMissingStart
	}

	end := input.EndTime
	if end.IsZero() {
		end = input.StartTime.Add(calendar.DefaultEventDuration)
	}
	if !end.After(input.StartTime) {
		return model.Event{}, calendar.ErrInvalidRange
	}

	attendees := make([]string, 0, len(input.Attendees))
	for _, a := range input.Attendees {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		addr, err := mail.ParseAddress(a)
		if err != nil {
			return model.Event{}, calendar.ErrInvalidEmail
		}
		attendees = append(attendees, addr.Address)
	}

	ev, err := uc.repo.CreateEvent(ctx, repository.CreateOptions{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		StartTime:   input.StartTime,
		EndTime:     end,
		Location:    strings.TrimSpace(input.Location),
		Attendees:   attendees,
	})
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Create: %v", err)
		return model.Event{}, err
	}

	uc.l.Infof(ctx, "calendar.usecase.Create: id=%s start=%s", ev.ID, ev.StartTime)
	return ev, nil
}

func (uc *implUseCase) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	if limit <= 0 {
		limit = defaultUpcomingLimit
	}
	events, err := uc.repo.Upcoming(ctx, limit)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Upcoming: %v", err)
		return nil, err
	}
	return events, nil
}

func (uc *implUseCase) Sync(ctx context.Context) (calendar.SyncOutput, error) {
	res, err := uc.repo.Sync(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "calendar.usecase.Sync: %v", err)
		return calendar.SyncOutput{}, err
	}
	return calendar.SyncOutput{Message: res.Message, Synced: res.Synced}, nil
}
