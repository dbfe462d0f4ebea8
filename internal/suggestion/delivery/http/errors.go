package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/suggestion"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates suggestion errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, suggestion.ErrEmptyID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, suggestion.ErrSuggestionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, suggestion.ErrActionFailed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
