package usecase

import (
	"context"
	"time"

	"productivity-assistant/internal/voice"
	"productivity-assistant/internal/voice/repository"
	pkgLog "productivity-assistant/pkg/log"
)

// Devices are the local capabilities the coordinator can use. Any of them
// may be nil.
type Devices struct {
	Recognizer  voice.Recognizer
	Recorder    voice.Recorder
	Synthesizer voice.Synthesizer
	Player      voice.Player
	Sink        voice.EventSink
}

// Config tunes the coordinator.
type Config struct {
	DetectTimeout     time.Duration
	TranscribeTimeout time.Duration
	SpeakTimeout      time.Duration
	// Voice and Speed are sent with remote synthesis requests.
	Voice string
	Speed float64
}

func (c Config) withDefaults() Config {
	if c.DetectTimeout <= 0 {
		c.DetectTimeout = 5 * time.Second
	}
	if c.TranscribeTimeout <= 0 {
		c.TranscribeTimeout = 60 * time.Second
	}
	if c.SpeakTimeout <= 0 {
		c.SpeakTimeout = 2 * time.Minute
	}
	if c.Voice == "" {
		c.Voice = "alloy"
	}
	if c.Speed <= 0 {
		c.Speed = 1.0
	}
	return c
}

// New creates the voice coordinator. The capture strategy is chosen here
// and kept for the coordinator's lifetime.
func New(l pkgLog.Logger, repo repository.Repository, dev Devices, cfg Config) voice.UseCase {
	cfg = cfg.withDefaults()
	lifeCtx, lifeCancel := context.WithCancel(context.Background())

	uc := &implUseCase{
		l:          l,
		repo:       repo,
		dev:        dev,
		cfg:        cfg,
		lifeCtx:    lifeCtx,
		lifeCancel: lifeCancel,
		state:      voice.StateIdle,
		idle:       make(chan struct{}),
	}
	close(uc.idle)

	detectCtx, cancel := context.WithTimeout(lifeCtx, cfg.DetectTimeout)
	defer cancel()
	uc.strategy = detectStrategy(detectCtx, dev)
	l.Infof(detectCtx, "voice.usecase.New: capture strategy %s", uc.strategy)
	return uc
}

func detectStrategy(ctx context.Context, dev Devices) voice.Strategy {
	if dev.Recognizer != nil && dev.Recognizer.Available(ctx) {
		return voice.StrategyStreaming
	}
	if dev.Recorder != nil && dev.Recorder.Available() {
		return voice.StrategyRecordUpload
	}
	return voice.StrategyNone
}
