package streaming

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"productivity-assistant/internal/voice"
)

// closeStreamMessage asks the service to flush its final result and hang up.
const closeStreamMessage = `{"type":"CloseStream"}`

// finalizeTimeout bounds how long a stopped session waits for the service.
var finalizeTimeout = 4 * time.Second

type session struct {
	conn      *websocket.Conn
	mic       voice.AudioStream
	chunkSize int

	results chan voice.RecognitionResult
	done    chan struct{}
	wg      sync.WaitGroup

	errMu sync.Mutex
	err   error

	stopOnce  sync.Once
	abortOnce sync.Once
	// closing is set once we hang up ourselves; read and write errors
	// after that are expected.
	closing atomic.Bool
}

func newSession(conn *websocket.Conn, mic voice.AudioStream, chunkSize int) *session {
	return &session{
		conn:      conn,
		mic:       mic,
		chunkSize: chunkSize,
		results:   make(chan voice.RecognitionResult, 64),
		done:      make(chan struct{}),
	}
}

func (s *session) run() {
	s.wg.Add(2)
	go s.writeLoop()
	go s.readLoop()
	go func() {
		s.wg.Wait()
		_ = s.mic.Stop()
		_ = s.conn.Close()
		close(s.results)
		close(s.done)
	}()
}

func (s *session) Results() <-chan voice.RecognitionResult {
	return s.results
}

// Stop releases the microphone. The write loop then sends CloseStream and
// the read loop ends when the service hangs up.
func (s *session) Stop() error {
	var err error
	s.stopOnce.Do(func() {
		err = s.mic.Stop()
		timeout := finalizeTimeout
		go func() {
			select {
			case <-s.done:
			case <-time.After(timeout):
				s.hangUp()
			}
		}()
	})
	return err
}

func (s *session) Abort() error {
	s.abortOnce.Do(func() {
		_ = s.Stop()
		s.hangUp()
	})
	<-s.done
	return nil
}

func (s *session) hangUp() {
	s.closing.Store(true)
	_ = s.conn.Close()
}

func (s *session) Err() error {
	s.errMu.Lock()
	defer s.errMu.Unlock()
	return s.err
}

func (s *session) setErr(err error) {
	if err == nil || s.closing.Load() {
		return
	}

	s.errMu.Lock()
	defer s.errMu.Unlock()
	if s.err == nil {
		s.err = err
	}
}

// writeLoop pumps microphone chunks to the service until capture ends.
func (s *session) writeLoop() {
	defer s.wg.Done()

	buf := make([]byte, s.chunkSize)
	for {
		n, err := s.mic.Read(buf)
		if n > 0 {
			if werr := s.conn.WriteMessage(websocket.BinaryMessage, buf[:n]); werr != nil {
				s.setErr(fmt.Errorf("failed to send audio: %w", werr))
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) && !isClosedPipe(err) {
				s.setErr(fmt.Errorf("audio capture error: %w", err))
			}
			break
		}
	}

	if err := s.conn.WriteMessage(websocket.TextMessage, []byte(closeStreamMessage)); err != nil {
		s.setErr(fmt.Errorf("failed to close stream: %w", err))
	}
}

func (s *session) readLoop() {
	defer s.wg.Done()

	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if !isNormalClose(err) {
				s.setErr(fmt.Errorf("failed to read recognizer event: %w", err))
			}
			_ = s.Stop()
			return
		}

		var resp recognizerResponse
		if err := json.Unmarshal(payload, &resp); err != nil {
			continue
		}

		if strings.EqualFold(resp.Type, "Error") {
			msg := strings.TrimSpace(resp.Message)
			if msg == "" {
				msg = "recognizer returned an unknown error"
			}
			s.setErr(errors.New(msg))
			_ = s.Stop()
			return
		}

		text := resp.transcript()
		if text == "" {
			continue
		}
		s.results <- voice.RecognitionResult{Text: text, Final: resp.IsFinal || resp.SpeechFinal}
	}
}

type recognizerResponse struct {
	Type        string `json:"type"`
	Message     string `json:"message"`
	IsFinal     bool   `json:"is_final"`
	SpeechFinal bool   `json:"speech_final"`

	Channel struct {
		Alternatives []struct {
			Transcript string `json:"transcript"`
		} `json:"alternatives"`
	} `json:"channel"`
}

func (r recognizerResponse) transcript() string {
	if len(r.Channel.Alternatives) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Channel.Alternatives[0].Transcript)
}

// isNormalClose must see the raw read error: websocket.IsCloseError does
// not unwrap.
func isNormalClose(err error) bool {
	var ce *websocket.CloseError
	if !errors.As(err, &ce) {
		return false
	}
	switch ce.Code {
	case websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived:
		return true
	}
	return false
}

func isClosedPipe(err error) bool {
	return errors.Is(err, io.ErrClosedPipe) || strings.Contains(err.Error(), "file already closed")
}
