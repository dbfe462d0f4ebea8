package rest

import (
	"productivity-assistant/internal/email/repository"
	"productivity-assistant/pkg/apiclient"
	pkgLog "productivity-assistant/pkg/log"
)

type implRepository struct {
	l      pkgLog.Logger
	client *apiclient.Client
}

// New creates the REST email repository.
func New(l pkgLog.Logger, client *apiclient.Client) repository.Repository {
	return &implRepository{l: l, client: client}
}
