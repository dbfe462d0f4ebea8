package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/model"
	"productivity-assistant/internal/suggestion"
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
	listIn    suggestion.ListInput
	acceptErr error
	dismissed string
}

func (m *mockUseCase) List(ctx context.Context, input suggestion.ListInput) (suggestion.ListOutput, error) {
	m.listIn = input
	return suggestion.ListOutput{
		Suggestions: []suggestion.Suggestion{
			{ID: "t", Kind: suggestion.KindTask, Title: "Review", Payload: suggestion.TaskPayload{Title: "Review Q4"}},
			{ID: "e", Kind: suggestion.KindEvent, Title: "Retro", Payload: suggestion.EventPayload{Title: "Retro", StartTime: time.Now()}},
			{ID: "g", Kind: suggestion.KindGeneral, Title: "Break", Payload: suggestion.GenericPayload{Action: "Rest"}},
		},
		Total: 3,
	}, nil
}

func (m *mockUseCase) Accept(ctx context.Context, id string) (suggestion.AcceptOutput, error) {
	if m.acceptErr != nil {
		return suggestion.AcceptOutput{}, m.acceptErr
	}
	return suggestion.AcceptOutput{Message: "ok", ActionTaken: "Task created", Task: &model.Task{ID: 5}}, nil
}

func (m *mockUseCase) Dismiss(ctx context.Context, id string) error {
	m.dismissed = id
	return nil
}

func (m *mockUseCase) Generate(ctx context.Context) (suggestion.GenerateOutput, error) {
	return suggestion.GenerateOutput{Message: "New suggestions generated", Count: 3}, nil
}

func newRouter(uc suggestion.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/suggestions"), New(&mockLogger{}, uc))
	return r
}

func do(r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	return w
}

func TestHandlers(t *testing.T) {
	t.Run("List renders payload kinds", func(t *testing.T) {
		uc := &mockUseCase{}
		w := do(newRouter(uc), http.MethodGet, "/suggestions?type=calendar&limit=4")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := w.Body.String()
		for _, want := range []string{`"kind":"create_task"`, `"kind":"create_event"`, `"kind":"generic"`} {
			if !strings.Contains(body, want) {
				t.Errorf("body missing %s: %s", want, body)
			}
		}
		if uc.listIn.Kind != suggestion.KindEvent || uc.listIn.Limit != 4 {
			t.Errorf("unexpected input %+v", uc.listIn)
		}
	})

	t.Run("Accept", func(t *testing.T) {
		w := do(newRouter(&mockUseCase{}), http.MethodPost, "/suggestions/t/accept")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"task_id":5`) {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("Accept errors", func(t *testing.T) {
		tests := []struct {
			err  error
			code int
		}{
			{suggestion.ErrSuggestionNotFound, http.StatusNotFound},
			{suggestion.ErrActionFailed, http.StatusUnprocessableEntity},
			{errors.New("network"), http.StatusBadGateway},
		}
		for _, tt := range tests {
			w := do(newRouter(&mockUseCase{acceptErr: tt.err}), http.MethodPost, "/suggestions/x/accept")
			if w.Code != tt.code {
				t.Errorf("%v: expected %d, got %d", tt.err, tt.code, w.Code)
			}
		}
	})

	t.Run("Dismiss", func(t *testing.T) {
		uc := &mockUseCase{}
		w := do(newRouter(uc), http.MethodPost, "/suggestions/g/dismiss")
		if w.Code != http.StatusOK || uc.dismissed != "g" {
			t.Errorf("unexpected response %d dismissed=%q", w.Code, uc.dismissed)
		}
	})

	t.Run("Generate", func(t *testing.T) {
		w := do(newRouter(&mockUseCase{}), http.MethodPost, "/suggestions/generate")
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), `"count":3`) {
			t.Errorf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
