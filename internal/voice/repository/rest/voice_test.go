package rest_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"productivity-assistant/internal/voice"
	"productivity-assistant/internal/voice/repository/rest"
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

func TestVoiceRepository(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/voice/transcribe", func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("audio")
		if err != nil {
			t.Errorf("FormFile: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(file)
		if string(data) != "RIFFdata" || header.Filename != "recording.wav" {
			t.Errorf("unexpected upload %q %q", header.Filename, data)
		}
		json.NewEncoder(w).Encode(map[string]any{"text": "book a room", "confidence": 0.95, "duration": 3.5})
	})
	mux.HandleFunc("/api/voice/synthesize", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		json.NewDecoder(r.Body).Decode(&req)
		if req["text"] != "hello" || req["voice"] != "alloy" {
			t.Errorf("unexpected body %v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"message":   "Speech synthesis completed",
			"audio_url": "/api/voice/audio/demo.mp3",
			"duration":  0.5,
		})
	})
	mux.HandleFunc("/api/voice/voices", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"voices":[{"id":"alloy","name":"Alloy","gender":"neutral"},{"id":"echo","name":"Echo","gender":"male"}]}`))
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client, err := apiclient.New(apiclient.Config{BaseURL: ts.URL + "/api"})
	if err != nil {
		t.Fatalf("apiclient.New: %v", err)
	}
	repo := rest.New(&mockLogger{}, client)
	ctx := context.Background()

	t.Run("Transcribe", func(t *testing.T) {
		got, err := repo.Transcribe(ctx, voice.Clip{Data: []byte("RIFFdata")})
		if err != nil {
			t.Fatalf("Transcribe: %v", err)
		}
		if got.Text != "book a room" || got.Duration != 3500*time.Millisecond {
			t.Errorf("unexpected transcription %+v", got)
		}
	})

	t.Run("Transcribe empty clip", func(t *testing.T) {
		if _, err := repo.Transcribe(ctx, voice.Clip{}); !errors.Is(err, voice.ErrNoAudio) {
			t.Errorf("expected ErrNoAudio, got %v", err)
		}
	})

	t.Run("Synthesize resolves audio url", func(t *testing.T) {
		got, err := repo.Synthesize(ctx, voice.SynthesizeOptions{Text: "hello", Voice: "alloy", Speed: 1})
		if err != nil {
			t.Fatalf("Synthesize: %v", err)
		}
		if got.AudioURL != ts.URL+"/api/voice/audio/demo.mp3" {
			t.Errorf("unexpected audio url %q", got.AudioURL)
		}
	})

	t.Run("Voices", func(t *testing.T) {
		got, err := repo.Voices(ctx)
		if err != nil {
			t.Fatalf("Voices: %v", err)
		}
		if len(got) != 2 || got[1].ID != "echo" {
			t.Errorf("unexpected voices %+v", got)
		}
	})
}
