package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"productivity-assistant/internal/calendar"
	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/internal/model"
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

type mockRepo struct {
	listOpt   repository.ListOptions
	createOpt repository.CreateOptions
	upcoming  int
	err       error
}

func (m *mockRepo) ListEvents(ctx context.Context, opt repository.ListOptions) ([]model.Event, error) {
	m.listOpt = opt
	return []model.Event{{ID: "1"}}, m.err
}

func (m *mockRepo) CreateEvent(ctx context.Context, opt repository.CreateOptions) (model.Event, error) {
	m.createOpt = opt
	return model.Event{ID: "e1", Title: opt.Title, StartTime: opt.StartTime, EndTime: opt.EndTime}, m.err
}

func (m *mockRepo) Upcoming(ctx context.Context, limit int) ([]model.Event, error) {
	m.upcoming = limit
	return nil, m.err
}

func (m *mockRepo) Sync(ctx context.Context) (repository.SyncResult, error) {
	return repository.SyncResult{Message: "ok", Synced: 2}, m.err
}

func newTestUseCase(t *testing.T, repo *mockRepo, now time.Time) *implUseCase {
	t.Helper()
	p, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("NewParser: %v", err)
	}
	uc := New(&mockLogger{}, repo, p).(*implUseCase)
	uc.now = func() time.Time { return now }
	return uc
}

func TestList(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 10, 30, 0, 0, time.UTC) // Thursday

	tests := []struct {
		name      string
		input     calendar.ListInput
		wantStart time.Time
		wantDays  int
	}{
		{"today by default", calendar.ListInput{}, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 0},
		{"tomorrow", calendar.ListInput{Window: "tomorrow"}, time.Date(2024, 5, 3, 0, 0, 0, 0, time.UTC), 0},
		{"next 7 days", calendar.ListInput{Window: "next 7 days"}, time.Date(2024, 5, 2, 0, 0, 0, 0, time.UTC), 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(t, repo, now)
			if _, err := uc.List(ctx, tt.input); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !repo.listOpt.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", repo.listOpt.Start, tt.wantStart)
			}
			wantEnd := tt.wantStart.AddDate(0, 0, tt.wantDays+1)
			if !repo.listOpt.End.Before(wantEnd) || repo.listOpt.End.Before(wantEnd.Add(-time.Second)) {
				t.Errorf("end = %v, want just before %v", repo.listOpt.End, wantEnd)
			}
			if repo.listOpt.Limit != defaultListLimit {
				t.Errorf("limit = %d", repo.listOpt.Limit)
			}
		})
	}

	t.Run("explicit range wins", func(t *testing.T) {
		repo := &mockRepo{}
		uc := newTestUseCase(t, repo, now)
		start := now.Add(48 * time.Hour)
		uc.List(ctx, calendar.ListInput{Start: start, End: start.Add(time.Hour), Window: "today"})
		if !repo.listOpt.Start.Equal(start) {
			t.Errorf("start = %v", repo.listOpt.Start)
		}
	})

	t.Run("inverted range", func(t *testing.T) {
		uc := newTestUseCase(t, &mockRepo{}, now)
		_, err := uc.List(ctx, calendar.ListInput{Start: now, End: now.Add(-time.Hour)})
		if !errors.Is(err, calendar.ErrInvalidRange) {
			t.Errorf("expected ErrInvalidRange, got %v", err)
		}
	})
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   calendar.CreateInput
		wantErr error
	}{
		{"no title", calendar.CreateInput{StartTime: now}, calendar.ErrEmptyTitle},
		{"no start", calendar.CreateInput{Title: "x"}, calendar.ErrMissingStart},
		{"ends before start", calendar.CreateInput{Title: "x", StartTime: now, EndTime: now.Add(-time.Minute)}, calendar.ErrInvalidRange},
		{"bad attendee", calendar.CreateInput{Title: "x", StartTime: now, Attendees: []string{"not-an-email"}}, calendar.ErrInvalidEmail},
		{"ok", calendar.CreateInput{Title: " Sync ", StartTime: now, Attendees: []string{"Bob <bob@example.com>", " "}}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			uc := newTestUseCase(t, repo, now)
			_, err := uc.Create(ctx, tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
			if tt.wantErr != nil {
				return
			}
			if repo.createOpt.Title != "Sync" {
				t.Errorf("title = %q", repo.createOpt.Title)
			}
			if !repo.createOpt.EndTime.Equal(now.Add(calendar.DefaultEventDuration)) {
				t.Errorf("end = %v", repo.createOpt.EndTime)
			}
			if len(repo.createOpt.Attendees) != 1 || repo.createOpt.Attendees[0] != "bob@example.com" {
				t.Errorf("attendees = %v", repo.createOpt.Attendees)
			}
		})
	}
}

func TestUpcomingAndSync(t *testing.T) {
	ctx := context.Background()
	repo := &mockRepo{}
	uc := newTestUseCase(t, repo, time.Now())

	uc.Upcoming(ctx, 0)
	if repo.upcoming != defaultUpcomingLimit {
		t.Errorf("limit = %d", repo.upcoming)
	}

	out, err := uc.Sync(ctx)
	if err != nil || out.Synced != 2 {
		t.Errorf("unexpected sync %+v %v", out, err)
	}

	repo.err = errors.New("down")
	if _, err := uc.Sync(ctx); err == nil {
		t.Error("expected error")
	}
}
