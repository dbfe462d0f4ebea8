package http

import (
	"productivity-assistant/internal/calendar"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc calendar.UseCase
}

// New creates a new HTTP handler for the calendar domain.
func New(l log.Logger, uc calendar.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
