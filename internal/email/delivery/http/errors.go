package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/email"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates email errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, email.ErrInvalidRecipient),
		errors.Is(err, email.ErrEmptySubject),
		errors.Is(err, email.ErrEmptyBody),
		errors.Is(err, email.ErrEmptyEmailID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
