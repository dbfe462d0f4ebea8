package http

import (
	"errors"
	"net/http"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/voice"
	pkgErrors "productivity-assistant/pkg/errors"
)

// mapError translates chat errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, chat.ErrEmptySessionID), errors.Is(err, chat.ErrEmptyTranscript):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, chat.ErrSessionNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, chat.ErrNoActiveSession), errors.Is(err, chat.ErrSessionMismatch), errors.Is(err, voice.ErrBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}
