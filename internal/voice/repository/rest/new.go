package rest

import (
	"productivity-assistant/internal/voice/repository"
	"productivity-assistant/pkg/apiclient"
	"productivity-assistant/pkg/log"
)

type implRepository struct {
	l      log.Logger
	client *apiclient.Client
}

// New creates a voice repository backed by the assistant REST API.
func New(l log.Logger, client *apiclient.Client) repository.Repository {
	return &implRepository{l: l, client: client}
}
