package http

import (
	"productivity-assistant/internal/email"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc email.UseCase
}

// New creates a new HTTP handler for the email domain.
func New(l log.Logger, uc email.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
