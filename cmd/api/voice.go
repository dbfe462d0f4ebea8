package main

import (
	"context"

	"productivity-assistant/config"
	"productivity-assistant/internal/voice"
	"productivity-assistant/internal/voice/audio"
	"productivity-assistant/internal/voice/streaming"
	voiceUC "productivity-assistant/internal/voice/usecase"
	"productivity-assistant/pkg/log"
)

// newVoiceDevices builds the local voice adapters. The coordinator checks
// them once and settles on streaming, record-and-upload or none.
func newVoiceDevices(ctx context.Context, logger log.Logger, cfg config.VoiceConfig) voiceUC.Devices {
	audioCfg := voice.AudioConfig{
		SampleRate:  cfg.FFMPEG.SampleRate,
		Channels:    cfg.FFMPEG.Channels,
		InputFormat: cfg.FFMPEG.InputFormat,
		InputDevice: cfg.FFMPEG.InputDevice,
	}
	mic := audio.NewFFMPEGCapture(cfg.FFMPEG.Command)

	dev := voiceUC.Devices{
		Recorder: audio.NewRecorder(mic, audioCfg),
		Player:   audio.NewExecPlayer(cfg.PlayerCommand, cfg.PlayerArgs),
		Sink:     logSink{l: logger},
	}

	if cfg.Streaming.URL != "" {
		dev.Recognizer = streaming.New(streaming.Config{
			URL:            cfg.Streaming.URL,
			APIKey:         cfg.Streaming.APIKey,
			Model:          cfg.Streaming.Model,
			Language:       cfg.Streaming.Language,
			InterimResults: cfg.Streaming.InterimResults,
			Audio:          audioCfg,
		}, mic)
	}

	if synth := audio.NewExecSynthesizer(cfg.TTSCommand, cfg.TTSArgs); synth.Available() {
		dev.Synthesizer = synth
	} else {
		logger.Info(ctx, "No local speech synthesizer found, using backend synthesis")
	}

	return dev
}

// logSink records coordinator transitions.
type logSink struct {
	l log.Logger
}

func (s logSink) StatusChanged(st voice.Status) {
	ctx := context.Background()
	if st.Err != "" {
		s.l.Warnf(ctx, "voice: %s (%s): %s", st.State, st.ErrorCode, st.Err)
		return
	}
	s.l.Debugf(ctx, "voice: %s", st.State)
}
