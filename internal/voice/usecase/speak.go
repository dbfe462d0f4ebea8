package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"productivity-assistant/internal/voice"
)

func (uc *implUseCase) Speak(ctx context.Context, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}

	if s := uc.dev.Synthesizer; s != nil && s.Available() {
		if err := s.Speak(ctx, text); err != nil {
			uc.l.Warnf(ctx, "voice.usecase.Speak: local synthesizer: %v", err)
		}
		return
	}

	if err := uc.speakRemote(ctx, text); err != nil {
		uc.l.Warnf(ctx, "voice.usecase.Speak: %v", err)
	}
}

func (uc *implUseCase) speakRemote(ctx context.Context, text string) error {
	if uc.dev.Player == nil {
		return errors.New("no audio player configured")
	}

	ctx, cancel := context.WithTimeout(ctx, uc.cfg.SpeakTimeout)
	defer cancel()

	syn, err := uc.repo.Synthesize(ctx, voice.SynthesizeOptions{
		Text:  text,
		Voice: uc.cfg.Voice,
		Speed: uc.cfg.Speed,
	})
	if err != nil {
		return err
	}
	if err := uc.dev.Player.Play(ctx, syn.AudioURL); err != nil {
		return fmt.Errorf("play %s: %w", syn.AudioURL, err)
	}
	return nil
}

func (uc *implUseCase) Voices(ctx context.Context) ([]voice.VoiceOption, error) {
	voices, err := uc.repo.Voices(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "voice.usecase.Voices: %v", err)
		return nil, err
	}
	return voices, nil
}
