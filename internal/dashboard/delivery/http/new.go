package http

import (
	"productivity-assistant/internal/dashboard"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc dashboard.UseCase
}

// New creates a new HTTP handler for the dashboard.
func New(l log.Logger, uc dashboard.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
