package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/search"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates search errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, search.ErrEmptyQuery),
		errors.Is(err, search.ErrQueryTooLong):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
