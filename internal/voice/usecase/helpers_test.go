package usecase

import (
	"context"
	"sync"

	"productivity-assistant/internal/voice"
)

// Mock logger for testing
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

// fakeMic counts open microphone handles across both capture paths.
type fakeMic struct {
	mu      sync.Mutex
	open    int
	maxOpen int
}

func (m *fakeMic) acquire() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open++
	if m.open > m.maxOpen {
		m.maxOpen = m.open
	}
}

func (m *fakeMic) release() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open--
}

func (m *fakeMic) counts() (open, maxOpen int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open, m.maxOpen
}

type fakeRecognizer struct {
	mic       *fakeMic
	available bool
	startErr  error
	finalText string

	mu             sync.Mutex
	availableCalls int
	sessions       []*fakeRecognition
}

func (r *fakeRecognizer) Available(ctx context.Context) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.availableCalls++
	return r.available
}

func (r *fakeRecognizer) Start(ctx context.Context) (voice.Recognition, error) {
	if r.startErr != nil {
		return nil, r.startErr
	}
	r.mic.acquire()
	s := &fakeRecognition{
		mic:       r.mic,
		results:   make(chan voice.RecognitionResult, 16),
		finalText: r.finalText,
	}
	r.mu.Lock()
	r.sessions = append(r.sessions, s)
	r.mu.Unlock()
	return s, nil
}

func (r *fakeRecognizer) last() *fakeRecognition {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sessions[len(r.sessions)-1]
}

type fakeRecognition struct {
	mic       *fakeMic
	results   chan voice.RecognitionResult
	finalText string
	err       error

	mu     sync.Mutex
	closed bool
	stops  int
}

func (s *fakeRecognition) Results() <-chan voice.RecognitionResult { return s.results }

func (s *fakeRecognition) push(r voice.RecognitionResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.closed {
		s.results <- r
	}
}

func (s *fakeRecognition) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stops++
	if s.closed {
		return nil
	}
	if s.finalText != "" {
		s.results <- voice.RecognitionResult{Text: s.finalText, Final: true}
	}
	s.closeLocked()
	return nil
}

func (s *fakeRecognition) Abort() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
	return nil
}

// fail ends the session with err, as a dropped connection would.
func (s *fakeRecognition) fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
	s.closeLocked()
}

func (s *fakeRecognition) closeLocked() {
	if s.closed {
		return
	}
	s.closed = true
	s.mic.release()
	close(s.results)
}

func (s *fakeRecognition) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

type fakeRecorder struct {
	mic       *fakeMic
	available bool
	startErr  error
	clip      voice.Clip
}

func (r *fakeRecorder) Available() bool { return r.available }

func (r *fakeRecorder) Start(ctx context.Context) (voice.Recording, error) {
	if r.startErr != nil {
		return nil, r.startErr
	}
	r.mic.acquire()
	return &fakeRecording{mic: r.mic, clip: r.clip}, nil
}

type fakeRecording struct {
	mic  *fakeMic
	clip voice.Clip
	once sync.Once
}

func (r *fakeRecording) Stop() (voice.Clip, error) {
	r.once.Do(r.mic.release)
	return r.clip, nil
}

func (r *fakeRecording) Abort() error {
	r.once.Do(r.mic.release)
	return nil
}

type fakeRepo struct {
	mu           sync.Mutex
	transcribeFn func(ctx context.Context, clip voice.Clip) (voice.Transcription, error)
	synthURL     string
	synthErr     error
	synthCalls   int
}

func (r *fakeRepo) Transcribe(ctx context.Context, clip voice.Clip) (voice.Transcription, error) {
	if r.transcribeFn == nil {
		return voice.Transcription{Text: "transcribed"}, nil
	}
	return r.transcribeFn(ctx, clip)
}

func (r *fakeRepo) Synthesize(ctx context.Context, opt voice.SynthesizeOptions) (voice.Synthesis, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.synthCalls++
	return voice.Synthesis{AudioURL: r.synthURL}, r.synthErr
}

func (r *fakeRepo) Voices(ctx context.Context) ([]voice.VoiceOption, error) {
	return []voice.VoiceOption{{ID: "alloy", Name: "Alloy"}}, nil
}

type fakeSynth struct {
	available bool
	spoken    []string
}

func (s *fakeSynth) Available() bool { return s.available }

func (s *fakeSynth) Speak(ctx context.Context, text string) error {
	s.spoken = append(s.spoken, text)
	return nil
}

type fakePlayer struct {
	played []string
}

func (p *fakePlayer) Play(ctx context.Context, url string) error {
	p.played = append(p.played, url)
	return nil
}

// recordingSink keeps every state it was shown.
type recordingSink struct {
	mu     sync.Mutex
	states []voice.CaptureState
}

func (s *recordingSink) StatusChanged(st voice.Status) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, st.State)
}

func (s *recordingSink) seen() []voice.CaptureState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]voice.CaptureState(nil), s.states...)
}
