package rest_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"productivity-assistant/internal/email/repository"
	"productivity-assistant/internal/email/repository/rest"
	"productivity-assistant/pkg/apiclient"
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

func TestEmailRepository(t *testing.T) {
	var sent map[string]string

	mux := http.NewServeMux()
	mux.HandleFunc("/email/recent", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("limit") != "5" {
			t.Errorf("unexpected limit %q", r.URL.Query().Get("limit"))
		}
		json.NewEncoder(w).Encode([]map[string]any{{
			"id":      "demo_email_1",
			"subject": "Welcome to AI Assistant",
			"sender":  "noreply@aiassistant.com",
			"snippet": "Thank you for using...",
			"date":    "2024-05-01T08:15:00.123456",
			"is_read": false,
			"labels":  []string{"INBOX", "IMPORTANT"},
		}})
	})
	mux.HandleFunc("/email/summary", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"total_unread":      4,
			"important_emails":  1,
			"summary":           "Quiet inbox",
			"suggested_actions": []string{"Connect Gmail account"},
		})
	})
	mux.HandleFunc("/email/reply", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Query().Get("email_id") != "demo_email_1" {
			w.WriteHeader(http.StatusUnprocessableEntity)
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"suggested_replies": []string{"Thanks!", "Will do."}})
	})
	mux.HandleFunc("/email/send", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&sent)
		json.NewEncoder(w).Encode(map[string]string{"message": "Email sent successfully", "id": "sent_email_123"})
	})
	mux.HandleFunc("/email/sync", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"message": "Gmail sync completed", "emails_synced": 0})
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, _ := apiclient.New(apiclient.Config{BaseURL: ts.URL})
	repo := rest.New(&mockLogger{}, client)
	ctx := context.Background()

	t.Run("Recent", func(t *testing.T) {
		emails, err := repo.Recent(ctx, 5)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emails) != 1 || emails[0].IsRead || len(emails[0].Labels) != 2 {
			t.Fatalf("unexpected emails %+v", emails)
		}
		if emails[0].Date.Hour() != 8 {
			t.Errorf("date not decoded: %v", emails[0].Date)
		}
	})

	t.Run("Summary", func(t *testing.T) {
		s, err := repo.Summary(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s.TotalUnread != 4 || len(s.SuggestedActions) != 1 {
			t.Errorf("unexpected summary %+v", s)
		}
	})

	t.Run("SuggestReplies", func(t *testing.T) {
		replies, err := repo.SuggestReplies(ctx, "demo_email_1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(replies) != 2 {
			t.Errorf("unexpected replies %v", replies)
		}
	})

	t.Run("Send", func(t *testing.T) {
		res, err := repo.Send(ctx, repository.SendOptions{To: "bob@example.com", Subject: "Hi", Body: "Hello"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "sent_email_123" || sent["to"] != "bob@example.com" {
			t.Errorf("unexpected result %+v body %v", res, sent)
		}
		if _, ok := sent["in_reply_to"]; ok {
			t.Error("in_reply_to should be omitted")
		}
	})

	t.Run("Sync", func(t *testing.T) {
		res, err := repo.Sync(ctx)
		if err != nil || res.Message != "Gmail sync completed" {
			t.Errorf("unexpected sync %+v %v", res, err)
		}
	})
}
