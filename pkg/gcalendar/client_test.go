package gcalendar_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"productivity-assistant/pkg/gcalendar"
)

const installedCreds = `{
	"installed": {
		"client_id": "companion.apps.googleusercontent.com",
		"client_secret": "secret",
		"redirect_uris": ["http://localhost"]
	}
}`

// hostTransport sends every request to the test server.
type hostTransport struct {
	base http.RoundTripper
	host string
}

func (t *hostTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.host
	return t.base.RoundTrip(req)
}

func newTestClient(t *testing.T, h http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	hc := ts.Client()
	hc.Transport = &hostTransport{base: hc.Transport, host: strings.TrimPrefix(ts.URL, "http://")}

	c, err := gcalendar.NewClientFromHTTP(context.Background(), hc)
	if err != nil {
		t.Fatalf("NewClientFromHTTP: %v", err)
	}
	return c
}

func useTokenFile(t *testing.T, content string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "token.json")
	if content != "" {
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write token: %v", err)
		}
	}
	prev := gcalendar.TokenFile
	gcalendar.TokenFile = path
	t.Cleanup(func() { gcalendar.TokenFile = prev })
}

func TestNewClientFromCredentials(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown credentials format", func(t *testing.T) {
		useTokenFile(t, "")
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(`{"broken":true}`)); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("installed app with token", func(t *testing.T) {
		useTokenFile(t, `{"access_token":"tok","token_type":"Bearer","expiry":"2030-01-01T00:00:00Z"}`)
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("installed app without token", func(t *testing.T) {
		useTokenFile(t, "")
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds)); err == nil {
			t.Error("expected error when token.json is missing")
		}
	})

	t.Run("installed app with corrupt token", func(t *testing.T) {
		useTokenFile(t, `{"access_token":`)
		if _, err := gcalendar.NewClientFromCredentialsJSON(ctx, []byte(installedCreds)); err == nil {
			t.Error("expected error for corrupt token")
		}
	})

	t.Run("missing credentials file", func(t *testing.T) {
		if _, err := gcalendar.NewClientFromCredentialsFile(ctx, filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Error("expected read error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	start := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("sends attendees to the default calendar", func(t *testing.T) {
		var sent struct {
			Summary   string `json:"summary"`
			Location  string `json:"location"`
			Attendees []struct {
				Email string `json:"email"`
			} `json:"attendees"`
		}
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost || r.URL.Path != "/calendar/v3/calendars/primary/events" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			body, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(body, &sent)
			w.Write([]byte(`{"id":"ev-1","summary":"Planning","location":"Room 2","htmlLink":"https://calendar.google.com/ev-1"}`))
		})

		ev, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			Summary:   "Planning",
			Location:  "Room 2",
			StartTime: start,
			EndTime:   start.Add(time.Hour),
			Attendees: []string{"ana@example.com", "bo@example.com"},
		})
		if err != nil {
			t.Fatalf("CreateEvent: %v", err)
		}
		if ev.ID != "ev-1" || ev.HtmlLink != "https://calendar.google.com/ev-1" || ev.Location != "Room 2" {
			t.Errorf("unexpected event %+v", ev)
		}
		if !ev.StartTime.Equal(start) || len(ev.Attendees) != 2 {
			t.Errorf("request fields should carry over: %+v", ev)
		}
		if sent.Summary != "Planning" || len(sent.Attendees) != 2 || sent.Attendees[1].Email != "bo@example.com" {
			t.Errorf("unexpected request body %+v", sent)
		}
	})

	t.Run("api error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})
		if _, err := c.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x", StartTime: start, EndTime: start}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestListEvents(t *testing.T) {
	var query string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/calendar/v3/calendars/work/events":
			query = r.URL.RawQuery
			w.Write([]byte(`{"items":[
				{"id":"a","summary":"Offsite","start":{"date":"2025-03-11"},"end":{"date":"2025-03-12"}},
				{"id":"b","summary":"1:1","start":{"dateTime":"2025-03-10T15:00:00+01:00"},"end":{"dateTime":"2025-03-10T15:30:00+01:00"},
				 "attendees":[{"email":"ana@example.com"},{"email":""}]}
			]}`))
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	from := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	events, err := c.ListEvents(context.Background(), gcalendar.ListEventsRequest{
		CalendarID: "work",
		TimeMin:    from,
		TimeMax:    from.AddDate(0, 0, 7),
		MaxResults: 10,
	})
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if !events[0].AllDay || events[0].StartTime.Format("2006-01-02") != "2025-03-11" {
		t.Errorf("unexpected all-day event %+v", events[0])
	}
	if events[1].AllDay || events[1].StartTime.UTC().Hour() != 14 {
		t.Errorf("unexpected timed event %+v", events[1])
	}
	if len(events[1].Attendees) != 1 {
		t.Errorf("blank attendees should be dropped: %v", events[1].Attendees)
	}
	for _, want := range []string{"singleEvents=true", "orderBy=startTime", "maxResults=10", "timeMin="} {
		if !strings.Contains(query, want) {
			t.Errorf("query %q missing %q", query, want)
		}
	}

	if _, err := c.ListEvents(context.Background(), gcalendar.ListEventsRequest{CalendarID: "broken"}); err == nil {
		t.Error("expected api error")
	}
}
