package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Search godoc
// @Summary     Web search
// @Tags        Search
// @Produce     json
// @Param       q     query string true  "Search query"
// @Param       limit query int    false "Max results (1-20, default 10)"
// @Success     200 {object} searchResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/search [GET]
func (h *handler) Search(c *gin.Context) {
	ctx := c.Request.Context()

	var req searchReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Search(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newSearchResp(out))
}

// Suggestions godoc
// @Summary     Query suggestions
// @Tags        Search
// @Produce     json
// @Param       q query string true "Partial query"
// @Success     200 {object} suggestionsResp
// @Router      /api/v1/search/suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	var req suggestionsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	suggestions, err := h.uc.Suggestions(c.Request.Context(), req.Query)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}
	response.OK(c, suggestionsResp{Query: req.Query, Suggestions: suggestions})
}
