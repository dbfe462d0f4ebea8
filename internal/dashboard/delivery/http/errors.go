package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/dashboard"
	pkgErrors "productivity-assistant/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, dashboard.ErrInvalidWindow):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, dashboard.ErrUnavailable):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
