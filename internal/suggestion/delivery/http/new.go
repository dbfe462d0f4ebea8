package http

import (
	"productivity-assistant/internal/suggestion"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc suggestion.UseCase
}

// New creates a new HTTP handler for the suggestion domain.
func New(l log.Logger, uc suggestion.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
