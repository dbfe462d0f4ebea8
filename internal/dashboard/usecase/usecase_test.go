package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/dashboard"
	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/internal/task"
	"productivity-assistant/pkg/apiclient"
	"productivity-assistant/pkg/datemath"
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

type fakeSources struct {
	mu sync.Mutex

	taskErr, eventErr, emailErr, suggestionErr error

	taskInput task.ListInput
	listInput *calendar.ListInput
	upcomingN int
	calls     int
}

func (f *fakeSources) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.taskInput = input
	if f.taskErr != nil {
		return task.ListOutput{}, f.taskErr
	}
	return task.ListOutput{Tasks: []model.Task{{ID: 1, Title: "Write report"}}}, nil
}

type fakeEvents struct{ f *fakeSources }

func (e fakeEvents) List(ctx context.Context, input calendar.ListInput) ([]model.Event, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	e.f.listInput = &input
	if e.f.eventErr != nil {
		return nil, e.f.eventErr
	}
	return []model.Event{{ID: "ev-1", Title: "Standup"}}, nil
}

func (e fakeEvents) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	e.f.mu.Lock()
	defer e.f.mu.Unlock()
	e.f.upcomingN = limit
	if e.f.eventErr != nil {
		return nil, e.f.eventErr
	}
	return nil, nil
}

type fakeEmails struct{ f *fakeSources }

func (e fakeEmails) Recent(ctx context.Context, limit int) ([]model.Email, error) {
	if e.f.emailErr != nil {
		return nil, e.f.emailErr
	}
	return []model.Email{{ID: "m-1", Subject: "Hello"}}, nil
}

type fakeSuggestions struct{ f *fakeSources }

func (s fakeSuggestions) List(ctx context.Context, input suggestion.ListInput) (suggestion.ListOutput, error) {
	if s.f.suggestionErr != nil {
		return suggestion.ListOutput{}, s.f.suggestionErr
	}
	return suggestion.ListOutput{Suggestions: []suggestion.Suggestion{{ID: "s-1", Kind: suggestion.KindGeneral}}, Total: 1}, nil
}

func newTestUseCase(t *testing.T, f *fakeSources) *implUseCase {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, dashboard.Sources{
		Tasks:       f,
		Events:      fakeEvents{f},
		Emails:      fakeEmails{f},
		Suggestions: fakeSuggestions{f},
	}, p, Config{}).(*implUseCase)
	uc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return uc
}

func TestGet(t *testing.T) {
	t.Run("loads every section", func(t *testing.T) {
		f := &fakeSources{}
		uc := newTestUseCase(t, f)

		d, err := uc.Get(context.Background(), dashboard.GetInput{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !d.Complete() {
			t.Fatalf("expected complete dashboard, got %+v", d)
		}
		if len(d.Tasks.Items) != 1 || len(d.Emails.Items) != 1 || len(d.Suggestions.Items) != 1 {
			t.Errorf("unexpected sections: %+v", d)
		}
		if d.Events.Items == nil || len(d.Events.Items) != 0 {
			t.Errorf("expected empty non-nil events, got %#v", d.Events.Items)
		}
		if f.taskInput.Status != model.TaskStatusTodo {
			t.Errorf("expected todo filter, got %q", f.taskInput.Status)
		}
		if f.upcomingN != 5 {
			t.Errorf("expected upcoming limit 5, got %d", f.upcomingN)
		}
	})

	t.Run("window lists the resolved range", func(t *testing.T) {
		f := &fakeSources{}
		uc := newTestUseCase(t, f)

		d, err := uc.Get(context.Background(), dashboard.GetInput{Window: "  Next 7   Days "})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if d.Window != "next 7 days" {
			t.Errorf("unexpected window %q", d.Window)
		}
		if f.listInput == nil {
			t.Fatal("expected calendar List call")
		}
		wantStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
		if !f.listInput.Start.Equal(wantStart) {
			t.Errorf("unexpected start %v", f.listInput.Start)
		}
		if f.listInput.End.Day() != 17 {
			t.Errorf("unexpected end %v", f.listInput.End)
		}
	})

	t.Run("invalid window", func(t *testing.T) {
		uc := newTestUseCase(t, &fakeSources{})
		_, err := uc.Get(context.Background(), dashboard.GetInput{Window: "next funday"})
		if !errors.Is(err, dashboard.ErrInvalidWindow) {
			t.Fatalf("expected ErrInvalidWindow, got %v", err)
		}
	})

	t.Run("failed section does not hide the others", func(t *testing.T) {
		f := &fakeSources{emailErr: &apiclient.APIError{StatusCode: 502, Message: "gmail unavailable"}}
		uc := newTestUseCase(t, f)

		d, err := uc.Get(context.Background(), dashboard.GetInput{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if d.Emails.Err != "gmail unavailable" {
			t.Errorf("unexpected email error %q", d.Emails.Err)
		}
		if !d.Tasks.OK() || !d.Events.OK() || !d.Suggestions.OK() {
			t.Errorf("other sections should load: %+v", d)
		}
		if uc.cache.Len() != 0 {
			t.Error("partial dashboard must not be cached")
		}
	})

	t.Run("all sections failed", func(t *testing.T) {
		boom := errors.New("boom")
		f := &fakeSources{taskErr: boom, eventErr: boom, emailErr: boom, suggestionErr: boom}
		uc := newTestUseCase(t, f)

		_, err := uc.Get(context.Background(), dashboard.GetInput{})
		if !errors.Is(err, dashboard.ErrUnavailable) {
			t.Fatalf("expected ErrUnavailable, got %v", err)
		}
	})

	t.Run("serves from cache until refresh", func(t *testing.T) {
		f := &fakeSources{}
		uc := newTestUseCase(t, f)
		ctx := context.Background()

		if _, err := uc.Get(ctx, dashboard.GetInput{}); err != nil {
			t.Fatalf("Get: %v", err)
		}
		d, err := uc.Get(ctx, dashboard.GetInput{})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !d.Cached || f.calls != 1 {
			t.Errorf("expected cached dashboard, cached=%v calls=%d", d.Cached, f.calls)
		}

		d, err = uc.Get(ctx, dashboard.GetInput{Refresh: true})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if d.Cached || f.calls != 2 {
			t.Errorf("expected refetch, cached=%v calls=%d", d.Cached, f.calls)
		}

		uc.Invalidate()
		if uc.cache.Len() != 0 {
			t.Error("expected empty cache after Invalidate")
		}
	})
}
