// Package streaming is a live speech recognizer that sends microphone PCM
// to a websocket speech-to-text service and reads back interim and final
// transcripts.
package streaming

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/websocket"

	"productivity-assistant/internal/voice"
)

// Config controls the websocket recognizer.
type Config struct {
	// URL is the service endpoint. http(s) schemes are turned into ws(s).
	URL            string
	APIKey         string
	Model          string
	Language       string
	InterimResults bool
	ChunkSize      int
	Audio          voice.AudioConfig
}

// Recognizer implements voice.Recognizer.
type Recognizer struct {
	cfg    Config
	mic    voice.Microphone
	dialer *websocket.Dialer
}

func New(cfg Config, mic voice.Microphone) *Recognizer {
	if cfg.ChunkSize < 256 {
		cfg.ChunkSize = 4096
	}
	if cfg.Audio.SampleRate <= 0 {
		cfg.Audio.SampleRate = 16000
	}
	if cfg.Audio.Channels <= 0 {
		cfg.Audio.Channels = 1
	}
	return &Recognizer{cfg: cfg, mic: mic, dialer: websocket.DefaultDialer}
}

// Available needs a configured endpoint and a usable microphone.
func (r *Recognizer) Available(ctx context.Context) bool {
	if strings.TrimSpace(r.cfg.URL) == "" || r.mic == nil {
		return false
	}
	return r.mic.Available()
}

func (r *Recognizer) Start(ctx context.Context) (voice.Recognition, error) {
	if strings.TrimSpace(r.cfg.URL) == "" {
		return nil, voice.ErrRecognizerUnavailable
	}
	wsURL, err := buildListenURL(r.cfg)
	if err != nil {
		return nil, err
	}

	headers := http.Header{}
	if r.cfg.APIKey != "" {
		headers.Set("Authorization", "Token "+r.cfg.APIKey)
	}

	conn, _, err := r.dialer.DialContext(ctx, wsURL, headers)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to connect to recognizer: %v", voice.ErrRecognizerUnavailable, err)
	}

	stream, err := r.mic.Start(ctx, r.cfg.Audio)
	if err != nil {
		_ = conn.Close()
		if errors.Is(err, voice.ErrMicrophoneUnavailable) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", voice.ErrMicrophoneUnavailable, err)
	}

	s := newSession(conn, stream, r.cfg.ChunkSize)
	s.run()

	go func() {
		select {
		case <-ctx.Done():
			_ = s.Abort()
		case <-s.done:
		}
	}()
	return s, nil
}

func buildListenURL(cfg Config) (string, error) {
	base := strings.TrimSpace(cfg.URL)
	if strings.HasPrefix(base, "https://") {
		base = "wss://" + strings.TrimPrefix(base, "https://")
	} else if strings.HasPrefix(base, "http://") {
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}

	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid recognizer url: %w", err)
	}

	q := u.Query()
	q.Set("encoding", "linear16")
	q.Set("sample_rate", strconv.Itoa(cfg.Audio.SampleRate))
	q.Set("channels", strconv.Itoa(cfg.Audio.Channels))
	q.Set("interim_results", strconv.FormatBool(cfg.InterimResults))
	if cfg.Model != "" {
		q.Set("model", cfg.Model)
	}
	if cfg.Language != "" {
		q.Set("language", cfg.Language)
	}
	u.RawQuery = q.Encode()
	return u.String(), nil
}
