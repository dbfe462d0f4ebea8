package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/calendar"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates calendar errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, calendar.ErrEmptyTitle),
		errors.Is(err, calendar.ErrMissingStart),
		errors.Is(err, calendar.ErrInvalidRange),
		errors.Is(err, calendar.ErrInvalidEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
