package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"productivity-assistant/internal/search"
	"productivity-assistant/internal/search/repository"
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
	opt          repository.SearchOptions
	results      int
	suggestCalls int
	err          error
}

func (m *mockRepo) Search(ctx context.Context, opt repository.SearchOptions) (repository.SearchResult, error) {
	m.opt = opt
	res := repository.SearchResult{Query: opt.Query, Total: m.results}
	for i := 0; i < m.results; i++ {
		res.Results = append(res.Results, search.Result{Title: "hit"})
	}
	return res, m.err
}

func (m *mockRepo) Suggestions(ctx context.Context, query string) ([]string, error) {
	m.suggestCalls++
	if m.err != nil {
		return nil, m.err
	}
	return []string{query + " tutorial"}, nil
}

func TestSearch(t *testing.T) {
	ctx := context.Background()

	t.Run("trims the query and defaults the limit", func(t *testing.T) {
		repo := &mockRepo{results: 3}
		out, err := New(&mockLogger{}, repo).Search(ctx, search.SearchInput{Query: "  weather  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.opt.Query != "weather" || repo.opt.Limit != defaultLimit {
			t.Errorf("unexpected options %+v", repo.opt)
		}
		if out.Query != "weather" || len(out.Results) != 3 {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("caps the limit", func(t *testing.T) {
		repo := &mockRepo{results: 30}
		out, err := New(&mockLogger{}, repo).Search(ctx, search.SearchInput{Query: "news", Limit: 50})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.opt.Limit != maxLimit || len(out.Results) != maxLimit {
			t.Errorf("limit %d results %d, want %d", repo.opt.Limit, len(out.Results), maxLimit)
		}
		if out.Total != 30 {
			t.Errorf("total should come from the backend, got %d", out.Total)
		}
	})

	t.Run("rejects bad queries before calling the backend", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, repo)
		if _, err := uc.Search(ctx, search.SearchInput{Query: "   "}); !errors.Is(err, search.ErrEmptyQuery) {
			t.Errorf("expected ErrEmptyQuery, got %v", err)
		}
		if _, err := uc.Search(ctx, search.SearchInput{Query: strings.Repeat("a", maxQueryLen+1)}); !errors.Is(err, search.ErrQueryTooLong) {
			t.Errorf("expected ErrQueryTooLong, got %v", err)
		}
		if repo.opt.Query != "" {
			t.Error("backend should not be called")
		}
	})

	t.Run("backend error", func(t *testing.T) {
		boom := errors.New("boom")
		if _, err := New(&mockLogger{}, &mockRepo{err: boom}).Search(ctx, search.SearchInput{Query: "x"}); !errors.Is(err, boom) {
			t.Errorf("expected boom, got %v", err)
		}
	})
}

func TestSuggestions(t *testing.T) {
	ctx := context.Background()

	t.Run("short input yields nothing", func(t *testing.T) {
		repo := &mockRepo{}
		s, err := New(&mockLogger{}, repo).Suggestions(ctx, " k ")
		if err != nil || s == nil || len(s) != 0 {
			t.Errorf("got %v, %v; want empty", s, err)
		}
		if repo.suggestCalls != 0 {
			t.Error("backend should not be called")
		}
	})

	t.Run("repeated prefixes are served from cache", func(t *testing.T) {
		repo := &mockRepo{}
		uc := New(&mockLogger{}, repo)
		for _, q := range []string{"kube", "Kube", " kube "} {
			s, err := uc.Suggestions(ctx, q)
			if err != nil || len(s) != 1 {
				t.Fatalf("Suggestions(%q) = %v, %v", q, s, err)
			}
		}
		if repo.suggestCalls != 1 {
			t.Errorf("expected 1 backend call, got %d", repo.suggestCalls)
		}
	})

	t.Run("errors are not cached", func(t *testing.T) {
		repo := &mockRepo{err: errors.New("down")}
		uc := New(&mockLogger{}, repo)
		if _, err := uc.Suggestions(ctx, "kube"); err == nil {
			t.Fatal("expected error")
		}
		repo.err = nil
		if s, err := uc.Suggestions(ctx, "kube"); err != nil || len(s) != 1 {
			t.Errorf("retry = %v, %v", s, err)
		}
		if repo.suggestCalls != 2 {
			t.Errorf("expected 2 backend calls, got %d", repo.suggestCalls)
		}
	})
}
