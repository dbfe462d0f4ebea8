package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// List godoc
// @Summary     List suggestions
// @Tags        Suggestions
// @Produce     json
// @Param       type  query string false "task|event|email|general"
// @Param       limit query int    false "Max suggestions (default 10)"
// @Success     200 {object} listResp
// @Router      /api/v1/suggestions [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newListResp(out))
}

// Accept godoc
// @Summary     Accept a suggestion
// @Description Confirms the suggestion, then creates the task or event it carries.
// @Tags        Suggestions
// @Produce     json
// @Param       id path string true "Suggestion ID"
// @Success     200 {object} acceptResp
// @Failure     404 {object} response.Resp "Unknown suggestion"
// @Failure     422 {object} response.Resp "Accepted but the action failed"
// @Router      /api/v1/suggestions/{id}/accept [POST]
func (h *handler) Accept(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Accept(ctx, c.Param("id"))
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newAcceptResp(out))
}

// Dismiss godoc
// @Summary     Dismiss a suggestion
// @Tags        Suggestions
// @Produce     json
// @Param       id path string true "Suggestion ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/suggestions/{id}/dismiss [POST]
func (h *handler) Dismiss(c *gin.Context) {
	if err := h.uc.Dismiss(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, nil)
}

// Generate godoc
// @Summary     Generate suggestions
// @Tags        Suggestions
// @Produce     json
// @Success     200 {object} generateResp
// @Router      /api/v1/suggestions/generate [POST]
func (h *handler) Generate(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Generate(ctx)
	if err != nil {
		h.l.Errorf(ctx, "suggestion.delivery.Generate: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, generateResp{Message: out.Message, Count: out.Count, Titles: out.Titles})
}
