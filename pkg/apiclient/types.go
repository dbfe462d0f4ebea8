package apiclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/oauth2"
)

// Config configures a backend REST client.
type Config struct {
	BaseURL string
	Timeout time.Duration

	// RateLimitPerSec throttles outbound calls; zero disables throttling.
	RateLimitPerSec float64
	Burst           int

	// TokenSource authenticates every request with a bearer token.
	// Nil builds a public client (login endpoints).
	TokenSource oauth2.TokenSource

	// OnUnauthorized runs after any 401 answer.
	OnUnauthorized func(ctx context.Context)
}

// APIError is a non-2xx answer from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("backend API error %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code.
func IsStatus(err error, statusCode int) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == statusCode
	}
	return false
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
