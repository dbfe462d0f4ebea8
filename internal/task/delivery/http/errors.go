package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/task"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates task errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrEmptyTitle),
		errors.Is(err, task.ErrInvalidID),
		errors.Is(err, task.ErrInvalidStatus),
		errors.Is(err, task.ErrInvalidPriority),
		errors.Is(err, task.ErrEmptyUpdate),
		errors.Is(err, task.ErrInvalidIndex):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, task.ErrTaskNotFound), errors.Is(err, task.ErrNoChecklistItem):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
