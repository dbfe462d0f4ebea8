package http

import (
	"context"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/chat"
	"productivity-assistant/internal/voice"
	"productivity-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Tags        Chat
// @Produce     json
// @Success     200 {object} sessionResp
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	m := h.uc.Create(c.Request.Context())
	response.OK(c, newSessionResp(m.Snapshot()))
}

// GetSession godoc
// @Summary     Get a conversation
// @Description Opens the conversation locally if it is not open yet.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/chat/sessions/{id}/messages [GET]
func (h *handler) GetSession(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Open(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(m.Snapshot()))
}

// LoadHistory godoc
// @Summary     Load server history
// @Description Replaces the local log with the backend's history of the session.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/chat/sessions/{id}/history [POST]
func (h *handler) LoadHistory(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Open(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := m.LoadHistory(ctx, c.Param("id")); err != nil {
		h.l.Errorf(ctx, "manager.LoadHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(m.Snapshot()))
}

// SendMessage godoc
// @Summary     Send a message
// @Description The user message is kept even when the assistant call fails.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string  true "Session ID"
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	m, err := h.uc.Open(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	h.send(c, m, req.Content, req.Speak)
}

// SendVoice godoc
// @Summary     Send the voice transcript
// @Description Sends the committed voice transcript as a message and clears it.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string       true  "Session ID"
// @Param       body body sendVoiceReq false "Options"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "No transcript"
// @Failure     409 {object} response.Resp "Voice capture still running"
// @Router      /api/v1/chat/sessions/{id}/messages/voice [POST]
func (h *handler) SendVoice(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendVoiceReq
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, err)
			return
		}
	}

	if h.voice == nil {
		response.Error(c, h.mapError(chat.ErrEmptyTranscript))
		return
	}
	st := h.voice.Status()
	if st.Active() {
		response.Error(c, h.mapError(voice.ErrBusy))
		return
	}
	if st.Committed == "" {
		response.Error(c, h.mapError(chat.ErrEmptyTranscript))
		return
	}

	m, err := h.uc.Open(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	// The user message is appended either way, so the transcript is spent.
	h.voice.ClearTranscript()
	h.send(c, m, st.Committed, req.Speak)
}

func (h *handler) send(c *gin.Context, m chat.Manager, content string, speak bool) {
	ctx := c.Request.Context()

	reply, err := m.SendMessage(ctx, content)
	if err != nil {
		h.l.Errorf(ctx, "manager.SendMessage: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	if speak && h.voice != nil && reply.Content != "" {
		go h.voice.Speak(context.WithoutCancel(ctx), reply.Content)
	}
	response.OK(c, newSendResp(reply, m.Snapshot()))
}

// ClearHistory godoc
// @Summary     Clear a conversation
// @Description Empties the local log, then deletes the history on the backend.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} sessionResp
// @Failure     404 {object} response.Resp "Session not open"
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/chat/sessions/{id}/messages [DELETE]
func (h *handler) ClearHistory(c *gin.Context) {
	ctx := c.Request.Context()

	m, err := h.uc.Get(c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := m.ClearHistory(ctx); err != nil {
		h.l.Errorf(ctx, "manager.ClearHistory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSessionResp(m.Snapshot()))
}

// CloseSession godoc
// @Summary     Close a conversation locally
// @Description The backend keeps its history.
// @Tags        Chat
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) CloseSession(c *gin.Context) {
	h.uc.Close(c.Request.Context(), c.Param("id"))
	response.OK(c, nil)
}
