package voice

import "context"

// UseCase is the voice input coordinator: a single toggle over whichever
// capture strategy was chosen at startup, plus best-effort speech output.
//
//go:generate mockery --name UseCase
type UseCase interface {
	// Toggle starts capture from idle and stops it otherwise. It never
	// waits for recognition or transcription to finish.
	Toggle(ctx context.Context) (Status, error)
	// Cancel drops the current cycle and returns to idle at once.
	Cancel(ctx context.Context) Status
	// Await blocks until the coordinator is idle or ctx is done.
	Await(ctx context.Context) (Status, error)
	Status() Status
	ClearTranscript()
	ClearError()
	// Speak reads text aloud. Failures are logged only.
	Speak(ctx context.Context, text string)
	Voices(ctx context.Context) ([]VoiceOption, error)
	Close() error
}
