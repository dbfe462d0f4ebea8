package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/voice"
	pkgErrors "productivity-assistant/pkg/errors"
	"productivity-assistant/pkg/response"
)

// mapError translates voice errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, voice.ErrBusy):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, voice.ErrRecognizerUnavailable),
		errors.Is(err, voice.ErrCaptureUnsupported),
		errors.Is(err, voice.ErrMicrophoneUnavailable),
		errors.Is(err, voice.ErrClosed):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	default:
		return pkgErrors.FromBackend(err)
	}
}

// errorWithStatus answers a failed control call with the coordinator
// status, so the caller can see the error code and fall back.
func (h *handler) errorWithStatus(c *gin.Context, err error, st voice.Status) {
	var httpErr *pkgErrors.HTTPError
	if !errors.As(h.mapError(err), &httpErr) {
		response.Error(c, err)
		return
	}
	c.JSON(httpErr.StatusCode, response.Resp{
		ErrorCode: httpErr.StatusCode,
		Message:   httpErr.Message,
		Data:      newStatusResp(st),
	})
}
