package rest

import (
	"productivity-assistant/internal/calendar/repository"
	"productivity-assistant/pkg/apiclient"
	pkgLog "productivity-assistant/pkg/log"
)

type implRepository struct {
	l      pkgLog.Logger
	client *apiclient.Client
}

// New creates the calendar repository backed by the assistant backend.
func New(l pkgLog.Logger, client *apiclient.Client) repository.Repository {
	return &implRepository{l: l, client: client}
}
