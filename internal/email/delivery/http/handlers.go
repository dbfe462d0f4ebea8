package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Recent godoc
// @Summary     Recent emails
// @Tags        Email
// @Produce     json
// @Param       limit query int false "Max emails (default 10)"
// @Success     200 {object} recentResp
// @Router      /api/v1/email/recent [GET]
func (h *handler) Recent(c *gin.Context) {
	ctx := c.Request.Context()

	var req recentReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	emails, err := h.uc.Recent(ctx, req.Limit)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newRecentResp(emails))
}

// Summary godoc
// @Summary     Inbox summary
// @Tags        Email
// @Produce     json
// @Success     200 {object} summaryResp
// @Router      /api/v1/email/summary [GET]
func (h *handler) Summary(c *gin.Context) {
	s, err := h.uc.Summary(c.Request.Context())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, newSummaryResp(s))
}

// Sync godoc
// @Summary     Sync the mailbox
// @Tags        Email
// @Produce     json
// @Success     200 {object} syncResp
// @Router      /api/v1/email/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	out, err := h.uc.Sync(c.Request.Context())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, syncResp{Message: out.Message, Synced: out.Synced})
}

// SuggestReply godoc
// @Summary     Suggest replies
// @Tags        Email
// @Produce     json
// @Param       id path string true "Email ID"
// @Success     200 {object} repliesResp
// @Router      /api/v1/email/{id}/replies [POST]
func (h *handler) SuggestReply(c *gin.Context) {
	replies, err := h.uc.SuggestReply(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, repliesResp{SuggestedReplies: replies})
}

// Send godoc
// @Summary     Send an email
// @Tags        Email
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Email"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/email/send [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "email.delivery.Send: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, sendResp{ID: out.ID, Message: out.Message})
}
