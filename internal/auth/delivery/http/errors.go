package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/auth"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates auth errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, auth.ErrNotAuthenticated):
		return pkgErrors.ErrUnauthorized
	case errors.Is(err, auth.ErrMissingEmail),
		errors.Is(err, auth.ErrMissingCode),
		errors.Is(err, auth.ErrInvalidState):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, auth.ErrAccessDenied):
		return pkgErrors.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, auth.ErrAuthFailed), errors.Is(err, auth.ErrNoAccessToken):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
