package errors

import (
	"context"
	"errors"
	"net/http"

	"productivity-assistant/pkg/apiclient"
)

// FromBackend converts an error returned by a backend call into the
// HTTPError the companion API answers with.
func FromBackend(err error) *HTTPError {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusUnauthorized:
			return NewHTTPError(http.StatusUnauthorized, apiErr.Message)
		case apiErr.StatusCode >= 400 && apiErr.StatusCode < 500:
			return NewHTTPError(apiErr.StatusCode, apiErr.Message)
		default:
			return NewHTTPError(http.StatusBadGateway, apiErr.Message)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return NewHTTPError(http.StatusGatewayTimeout, "backend timed out")
	}
	return ErrBadGateway
}
