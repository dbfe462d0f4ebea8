package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"golang.org/x/oauth2"

	"productivity-assistant/pkg/apiclient"
)

var errNoToken = errors.New("no token")

type staticTokenSource struct {
	token string
}

func (s staticTokenSource) Token() (*oauth2.Token, error) {
	if s.token == "" {
		return nil, errNoToken
	}
	return &oauth2.Token{AccessToken: s.token, TokenType: "bearer"}, nil
}

func TestClient(t *testing.T) {
	var unauthorized atomic.Int32

	mux := http.NewServeMux()
	mux.HandleFunc("/echo", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		json.NewDecoder(r.Body).Decode(&body)
		json.NewEncoder(w).Encode(map[string]any{
			"method": r.Method,
			"auth":   r.Header.Get("Authorization"),
			"query":  r.URL.Query().Get("q"),
			"body":   body,
		})
	})
	mux.HandleFunc("/detail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail":"Error fetching tasks: boom"}`))
	})
	mux.HandleFunc("/validation", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"detail":[{"loc":["body","content"],"msg":"field required"}]}`))
	})
	mux.HandleFunc("/plain", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	mux.HandleFunc("/secret", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Not authenticated"}`))
	})
	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("audio")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		raw, _ := io.ReadAll(file)
		json.NewEncoder(w).Encode(map[string]any{"filename": header.Filename, "size": len(raw)})
	})
	mux.HandleFunc("/empty", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := apiclient.New(apiclient.Config{
		BaseURL:        ts.URL + "/",
		TokenSource:    staticTokenSource{token: "tok-1"},
		OnUnauthorized: func(ctx context.Context) { unauthorized.Add(1) },
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()

	t.Run("Post carries bearer token and body", func(t *testing.T) {
		var out struct {
			Method string         `json:"method"`
			Auth   string         `json:"auth"`
			Body   map[string]any `json:"body"`
		}
		if err := client.Post(ctx, "/echo", map[string]string{"content": "hi"}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", out.Method)
		}
		if out.Auth != "Bearer tok-1" {
			t.Errorf("unexpected auth header %q", out.Auth)
		}
		if out.Body["content"] != "hi" {
			t.Errorf("unexpected body %v", out.Body)
		}
	})

	t.Run("Get with query", func(t *testing.T) {
		var out struct {
			Query string `json:"query"`
		}
		if err := client.Get(ctx, "/echo", map[string][]string{"q": {"meeting"}}, &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Query != "meeting" {
			t.Errorf("expected query meeting, got %q", out.Query)
		}
	})

	t.Run("detail string becomes message", func(t *testing.T) {
		err := client.Get(ctx, "/detail", nil, nil)
		var apiErr *apiclient.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
		if apiErr.Message != "Error fetching tasks: boom" {
			t.Errorf("unexpected message %q", apiErr.Message)
		}
	})

	t.Run("detail list kept raw", func(t *testing.T) {
		err := client.Post(ctx, "/validation", map[string]string{}, nil)
		if !apiclient.IsStatus(err, http.StatusUnprocessableEntity) {
			t.Fatalf("expected 422, got %v", err)
		}
		if !strings.Contains(err.Error(), "field required") {
			t.Errorf("expected validation detail in %q", err.Error())
		}
	})

	t.Run("empty error body uses status text", func(t *testing.T) {
		err := client.Get(ctx, "/plain", nil, nil)
		var apiErr *apiclient.APIError
		if !errors.As(err, &apiErr) || apiErr.Message != "Bad Gateway" {
			t.Fatalf("unexpected error %v", err)
		}
	})

	t.Run("401 fires OnUnauthorized", func(t *testing.T) {
		before := unauthorized.Load()
		err := client.Get(ctx, "/secret", nil, nil)
		if !apiclient.IsStatus(err, http.StatusUnauthorized) {
			t.Fatalf("expected 401, got %v", err)
		}
		if unauthorized.Load() != before+1 {
			t.Errorf("expected OnUnauthorized to run once")
		}
	})

	t.Run("Upload multipart", func(t *testing.T) {
		var out struct {
			Filename string `json:"filename"`
			Size     int    `json:"size"`
		}
		err := client.Upload(ctx, "/upload", "audio", "recording.wav", strings.NewReader("RIFFdata"), &out)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Filename != "recording.wav" || out.Size != 8 {
			t.Errorf("unexpected upload echo %+v", out)
		}
	})

	t.Run("No content", func(t *testing.T) {
		var out map[string]any
		if err := client.Delete(ctx, "/empty", &out); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("404 helper", func(t *testing.T) {
		err := client.Get(ctx, "/missing", nil, nil)
		if !apiclient.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestClientTokenSourceError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not reach the server without a token")
	}))
	defer ts.Close()

	client, err := apiclient.New(apiclient.Config{BaseURL: ts.URL, TokenSource: staticTokenSource{}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = client.Get(context.Background(), "/anything", nil, nil)
	if !errors.Is(err, errNoToken) {
		t.Errorf("expected token error to propagate, got %v", err)
	}
}

func TestNewValidation(t *testing.T) {
	if _, err := apiclient.New(apiclient.Config{BaseURL: "localhost"}); err == nil {
		t.Error("expected error for relative base URL")
	}
}

func TestResolveURL(t *testing.T) {
	client, _ := apiclient.New(apiclient.Config{BaseURL: "http://localhost:8000"})

	tests := []struct {
		ref  string
		want string
	}{
		{ref: "/api/voice/audio/demo.mp3", want: "http://localhost:8000/api/voice/audio/demo.mp3"},
		{ref: "https://cdn.example.com/a.mp3", want: "https://cdn.example.com/a.mp3"},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := client.ResolveURL(tt.ref)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
