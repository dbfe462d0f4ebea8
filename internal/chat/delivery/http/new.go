package http

import (
	"context"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/voice"
	"productivity-assistant/pkg/log"
)

// VoiceInput is the part of the voice coordinator a chat turn uses.
type VoiceInput interface {
	Status() voice.Status
	ClearTranscript()
	Speak(ctx context.Context, text string)
}

type handler struct {
	l     log.Logger
	uc    chat.UseCase
	voice VoiceInput
}

// New creates a new HTTP handler for the chat domain. vi may be nil.
func New(l log.Logger, uc chat.UseCase, vi VoiceInput) *handler {
	return &handler{
		l:     l,
		uc:    uc,
		voice: vi,
	}
}
