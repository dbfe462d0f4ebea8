package repository

import (
	"context"

	"productivity-assistant/internal/voice"
)

// Repository is the backend voice API.
type Repository interface {
	// Transcribe uploads a recorded clip and returns its text.
	Transcribe(ctx context.Context, clip voice.Clip) (voice.Transcription, error)
	// Synthesize asks for spoken audio of opt.Text. The returned URL is absolute.
	Synthesize(ctx context.Context, opt voice.SynthesizeOptions) (voice.Synthesis, error)
	Voices(ctx context.Context) ([]voice.VoiceOption, error)
}
