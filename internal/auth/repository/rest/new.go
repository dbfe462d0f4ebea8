package rest

import (
	"productivity-assistant/internal/auth/repository"
	"productivity-assistant/pkg/apiclient"
	pkgLog "productivity-assistant/pkg/log"
)

type implRepository struct {
	l pkgLog.Logger
	// public serves the login endpoints, authed serves /auth/me.
	public *apiclient.Client
	authed *apiclient.Client
}

// New creates the REST auth repository.
func New(l pkgLog.Logger, public, authed *apiclient.Client) repository.Repository {
	return &implRepository{l: l, public: public, authed: authed}
}
