package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Status godoc
// @Summary     Voice input status
// @Description With wait=true the call returns once capture is idle again.
// @Tags        Voice
// @Produce     json
// @Param       wait query bool false "Wait for idle"
// @Success     200 {object} statusResp
// @Router      /api/v1/voice/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	var req statusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}
	if !req.Wait {
		response.OK(c, newStatusResp(h.uc.Status()))
		return
	}

	waitCtx, cancel := context.WithTimeout(ctx, maxWait)
	defer cancel()
	st, _ := h.uc.Await(waitCtx)
	response.OK(c, newStatusResp(st))
}

// Toggle godoc
// @Summary     Start or stop voice capture
// @Tags        Voice
// @Produce     json
// @Success     200 {object} statusResp
// @Failure     409 {object} response.Resp "Busy transcribing"
// @Failure     422 {object} response.Resp "Capture not possible"
// @Router      /api/v1/voice/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	st, err := h.uc.Toggle(ctx)
	if err != nil {
		h.l.Warnf(ctx, "uc.Toggle: %v", err)
		h.errorWithStatus(c, err, st)
		return
	}

	response.OK(c, newStatusResp(st))
}

// Cancel godoc
// @Summary     Abandon the current capture
// @Tags        Voice
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/voice/cancel [POST]
func (h *handler) Cancel(c *gin.Context) {
	response.OK(c, newStatusResp(h.uc.Cancel(c.Request.Context())))
}

// ClearTranscript godoc
// @Summary     Clear the transcript
// @Tags        Voice
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/voice/transcript [DELETE]
func (h *handler) ClearTranscript(c *gin.Context) {
	h.uc.ClearTranscript()
	response.OK(c, newStatusResp(h.uc.Status()))
}

// ClearError godoc
// @Summary     Clear the last voice error
// @Tags        Voice
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/voice/error [DELETE]
func (h *handler) ClearError(c *gin.Context) {
	h.uc.ClearError()
	response.OK(c, newStatusResp(h.uc.Status()))
}

// Speak godoc
// @Summary     Read text aloud
// @Description Playback happens in the background; failures are only logged.
// @Tags        Voice
// @Accept      json
// @Produce     json
// @Param       body body speakReq true "Text to speak"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/voice/speak [POST]
func (h *handler) Speak(c *gin.Context) {
	ctx := c.Request.Context()

	var req speakReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	go h.uc.Speak(context.WithoutCancel(ctx), req.Text)
	response.OK(c, nil)
}

// Voices godoc
// @Summary     List synthesis voices
// @Tags        Voice
// @Produce     json
// @Success     200 {object} voicesResp
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/voice/voices [GET]
func (h *handler) Voices(c *gin.Context) {
	ctx := c.Request.Context()

	vs, err := h.uc.Voices(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Voices: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newVoicesResp(vs))
}
