package google

import (
	"context"
	"errors"
	"testing"
	"time"

	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/pkg/gcalendar"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type fakeAPI struct {
	listReqs  []gcalendar.ListEventsRequest
	createReq gcalendar.CreateEventRequest
	events    []gcalendar.Event
	err       error
}

func (f *fakeAPI) ListEvents(ctx context.Context, req gcalendar.ListEventsRequest) ([]gcalendar.Event, error) {
	f.listReqs = append(f.listReqs, req)
	return f.events, f.err
}

func (f *fakeAPI) CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error) {
	f.createReq = req
	if f.err != nil {
		return nil, f.err
	}
	return &gcalendar.Event{ID: "g1", Summary: req.Summary, StartTime: req.StartTime, EndTime: req.EndTime, HtmlLink: "https://calendar/g1"}, nil
}

func TestGoogleRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	newRepo := func(api *fakeAPI) *implRepository {
		r := New(&mockLogger{}, api, Config{Timezone: "Europe/Berlin"}).(*implRepository)
		r.now = func() time.Time { return now }
		return r
	}

	t.Run("Create uses configured calendar and timezone", func(t *testing.T) {
		api := &fakeAPI{}
		ev, err := newRepo(api).CreateEvent(ctx, repository.CreateOptions{Title: "Lunch", StartTime: now, EndTime: now.Add(time.Hour)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if api.createReq.CalendarID != "primary" || api.createReq.Timezone != "Europe/Berlin" {
			t.Errorf("unexpected request %+v", api.createReq)
		}
		if ev.Title != "Lunch" || ev.Link == "" {
			t.Errorf("unexpected event %+v", ev)
		}
	})

	t.Run("Upcoming starts now", func(t *testing.T) {
		api := &fakeAPI{events: []gcalendar.Event{{ID: "a", Summary: "Standup", AllDay: true}}}
		events, err := newRepo(api).Upcoming(ctx, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !api.listReqs[0].TimeMin.Equal(now) || api.listReqs[0].MaxResults != 5 {
			t.Errorf("unexpected request %+v", api.listReqs[0])
		}
		if len(events) != 1 || !events[0].AllDay || events[0].Title != "Standup" {
			t.Errorf("unexpected events %+v", events)
		}
	})

	t.Run("Sync counts the horizon", func(t *testing.T) {
		api := &fakeAPI{events: make([]gcalendar.Event, 4)}
		res, err := newRepo(api).Sync(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Synced != 4 {
			t.Errorf("synced = %d", res.Synced)
		}
		if got := api.listReqs[0].TimeMax.Sub(now); got != defaultSyncHorizon {
			t.Errorf("horizon = %v", got)
		}
	})

	t.Run("Errors are wrapped", func(t *testing.T) {
		boom := errors.New("quota exceeded")
		_, err := newRepo(&fakeAPI{err: boom}).ListEvents(ctx, repository.ListOptions{})
		if !errors.Is(err, boom) {
			t.Errorf("expected wrapped error, got %v", err)
		}
	})
}
