package usecase

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"

	"productivity-assistant/internal/voice"
	"productivity-assistant/internal/voice/streaming"
)

type pipeMic struct{}

func (pipeMic) Available() bool { return true }

func (pipeMic) Start(ctx context.Context, cfg voice.AudioConfig) (voice.AudioStream, error) {
	r, _ := io.Pipe()
	return &pipeStream{PipeReader: r}, nil
}

type pipeStream struct {
	*io.PipeReader
	once sync.Once
}

func (s *pipeStream) Stop() error {
	s.once.Do(func() { _ = s.PipeReader.Close() })
	return nil
}

// silentService hangs up normally when the stream is closed and never
// produces a transcript.
func silentService(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, payload, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if strings.Contains(string(payload), "CloseStream") {
				conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
		}
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestStreamingSilence(t *testing.T) {
	ts := silentService(t)
	rec := streaming.New(streaming.Config{URL: ts.URL}, pipeMic{})
	uc := New(&mockLogger{}, &fakeRepo{}, Devices{Recognizer: rec}, Config{})
	defer uc.Close()

	ctx := context.Background()
	if st, err := uc.Toggle(ctx); err != nil || st.State != voice.StateListening {
		t.Fatalf("Toggle() = %+v, %v", st, err)
	}
	if _, err := uc.Toggle(ctx); err != nil {
		t.Fatalf("second Toggle() error = %v", err)
	}

	st := awaitIdle(t, uc)
	if st.Err != "" || st.ErrorCode != voice.ErrorCodeNone {
		t.Errorf("a silent session should end cleanly, got %+v", st)
	}
	if st.Committed != "" || st.Transcript != "" {
		t.Errorf("transcript = %q committed = %q, want empty", st.Transcript, st.Committed)
	}
}
