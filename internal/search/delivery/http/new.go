package http

import (
	"productivity-assistant/internal/search"
	"productivity-assistant/pkg/log"
)

type handler struct {
	l  log.Logger
	uc search.UseCase
}

// New creates a new HTTP handler for the search domain.
func New(l log.Logger, uc search.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
