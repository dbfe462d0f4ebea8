package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/dashboard"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/task"
	"productivity-assistant/pkg/apiclient"
)

// errPartial keeps a dashboard with failed sections out of the cache.
var errPartial = errors.New("partial dashboard")

func (uc *implUseCase) Get(ctx context.Context, input dashboard.GetInput) (dashboard.Dashboard, error) {
	window := strings.ToLower(strings.Join(strings.Fields(input.Window), " "))

	d := dashboard.Dashboard{Window: window}
	if window != "" {
		r, err := uc.dateMath.Window(window, uc.now())
		if err != nil {
			return dashboard.Dashboard{}, dashboard.ErrInvalidWindow
		}
		d.From, d.To = r.Start, r.End
	}

	fetch := func(ctx context.Context) (dashboard.Dashboard, error) {
		out := uc.load(ctx, d)
		if !out.Complete() {
			return out, errPartial
		}
		return out, nil
	}

	var (
		out    dashboard.Dashboard
		cached bool
		err    error
	)
	if input.Refresh {
		out, err = uc.cache.Fetch(ctx, window, fetch)
	} else {
		out, cached, err = uc.cache.GetOrFetch(ctx, window, fetch)
	}
	out.Cached = cached

	switch {
	case err == nil:
		return out, nil
	case errors.Is(err, errPartial):
		if !out.Tasks.OK() && !out.Events.OK() && !out.Emails.OK() && !out.Suggestions.OK() {
			uc.l.Errorf(ctx, "dashboard.usecase.Get: window=%q: all sections failed", window)
			return out, dashboard.ErrUnavailable
		}
		uc.l.Warnf(ctx, "dashboard.usecase.Get: window=%q: partial dashboard", window)
		return out, nil
	default:
		return dashboard.Dashboard{}, err
	}
}

func (uc *implUseCase) Invalidate() {
	uc.cache.Purge()
}

// load fetches every section concurrently. Section failures are recorded
// on the section, never returned, so one slow or broken source cannot
// cancel the others.
func (uc *implUseCase) load(ctx context.Context, d dashboard.Dashboard) dashboard.Dashboard {
	var g errgroup.Group

	g.Go(func() error {
		sctx, cancel := context.WithTimeout(ctx, uc.cfg.SectionTimeout)
		defer cancel()
		out, err := uc.src.Tasks.List(sctx, task.ListInput{Status: model.TaskStatusTodo, Limit: uc.cfg.TaskLimit})
		d.Tasks = section(out.Tasks, err)
		uc.logSection(ctx, "tasks", err)
		return nil
	})

	g.Go(func() error {
		sctx, cancel := context.WithTimeout(ctx, uc.cfg.SectionTimeout)
		defer cancel()
		var (
			events []model.Event
			err    error
		)
		if d.Window == "" {
			events, err = uc.src.Events.Upcoming(sctx, uc.cfg.EventLimit)
		} else {
			events, err = uc.src.Events.List(sctx, calendar.ListInput{Start: d.From, End: d.To})
		}
		d.Events = section(events, err)
		uc.logSection(ctx, "events", err)
		return nil
	})

	g.Go(func() error {
		sctx, cancel := context.WithTimeout(ctx, uc.cfg.SectionTimeout)
		defer cancel()
		emails, err := uc.src.Emails.Recent(sctx, uc.cfg.EmailLimit)
		d.Emails = section(emails, err)
		uc.logSection(ctx, "emails", err)
		return nil
	})

	g.Go(func() error {
		sctx, cancel := context.WithTimeout(ctx, uc.cfg.SectionTimeout)
		defer cancel()
		out, err := uc.src.Suggestions.List(sctx, suggestion.ListInput{Limit: uc.cfg.SuggestionLimit})
		d.Suggestions = section(out.Suggestions, err)
		uc.logSection(ctx, "suggestions", err)
		return nil
	})

	g.Wait()
	d.FetchedAt = uc.now()
	return d
}

func (uc *implUseCase) logSection(ctx context.Context, name string, err error) {
	if err != nil {
		uc.l.Warnf(ctx, "dashboard.usecase.load: %s: %v", name, err)
	}
}

func section[T any](items []T, err error) dashboard.Section[T] {
	if err != nil {
		return dashboard.Section[T]{Err: describe(err)}
	}
	if items == nil {
		items = []T{}
	}
	return dashboard.Section[T]{Items: items}
}

func describe(err error) string {
	var apiErr *apiclient.APIError
	switch {
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.Is(err, context.DeadlineExceeded):
		return "request timed out"
	default:
		return err.Error()
	}
}
