package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/dashboard"
	"productivity-assistant/internal/model"
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

type mockUseCase struct {
	in          dashboard.GetInput
	err         error
	invalidated bool
}

func (m *mockUseCase) Get(ctx context.Context, input dashboard.GetInput) (dashboard.Dashboard, error) {
	m.in = input
	if m.err != nil {
		return dashboard.Dashboard{}, m.err
	}
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	due := now.Add(-time.Hour)
	return dashboard.Dashboard{
		Tasks: dashboard.Section[model.Task]{Items: []model.Task{
			{ID: 1, Title: "Late", Status: model.TaskStatusTodo, DueDate: &due},
		}},
		Events:    dashboard.Section[model.Event]{Items: []model.Event{}},
		Emails:    dashboard.Section[model.Email]{Err: "gmail unavailable"},
		FetchedAt: now,
	}, nil
}

func (m *mockUseCase) Invalidate() { m.invalidated = true }

func newRouter(uc dashboard.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/dashboard"), New(&mockLogger{}, uc))
	return r
}

func TestGet(t *testing.T) {
	t.Run("renders sections", func(t *testing.T) {
		uc := &mockUseCase{}
		w := httptest.NewRecorder()
		newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?window=today&refresh=true", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		if uc.in.Window != "today" || !uc.in.Refresh {
			t.Errorf("unexpected input %+v", uc.in)
		}

		var body struct {
			Data struct {
				Tasks struct {
					Items []struct {
						ID      int64 `json:"id"`
						Overdue bool  `json:"overdue"`
					} `json:"items"`
				} `json:"tasks"`
				Emails struct {
					Items []json.RawMessage `json:"items"`
					Error string            `json:"error"`
				} `json:"emails"`
			} `json:"data"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(body.Data.Tasks.Items) != 1 || !body.Data.Tasks.Items[0].Overdue {
			t.Errorf("expected one overdue task, got %+v", body.Data.Tasks.Items)
		}
		if body.Data.Emails.Error != "gmail unavailable" || body.Data.Emails.Items == nil {
			t.Errorf("unexpected emails section %+v", body.Data.Emails)
		}
	})

	t.Run("invalid window", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&mockUseCase{err: dashboard.ErrInvalidWindow}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?window=next+funday", nil))
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unavailable", func(t *testing.T) {
		w := httptest.NewRecorder()
		newRouter(&mockUseCase{err: dashboard.ErrUnavailable}).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard", nil))
		if w.Code != http.StatusBadGateway {
			t.Errorf("expected 502, got %d", w.Code)
		}
	})
}

func TestInvalidate(t *testing.T) {
	uc := &mockUseCase{}
	w := httptest.NewRecorder()
	newRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/dashboard/cache", nil))
	if w.Code != http.StatusOK || !uc.invalidated {
		t.Errorf("expected invalidation, got %d", w.Code)
	}
}
