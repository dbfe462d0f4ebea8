package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Get godoc
// @Summary     Dashboard side panel
// @Description Open tasks, events, recent email and suggestions in one call. A failed section carries an error while the rest still load.
// @Tags        Dashboard
// @Produce     json
// @Param       window  query string false "Events window, e.g. today, tomorrow, this week, next 7 days"
// @Param       refresh query bool   false "Bypass the cache"
// @Success     200 {object} dashboardResp
// @Failure     400 {object} response.Resp "Invalid window"
// @Failure     502 {object} response.Resp "Every section failed"
// @Router      /api/v1/dashboard [GET]
func (h *handler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	var req getReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	d, err := h.uc.Get(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newDashboardResp(d))
}

// Invalidate godoc
// @Summary     Drop cached dashboards
// @Tags        Dashboard
// @Produce     json
// @Success     200 {object} response.Resp
// @Router      /api/v1/dashboard/cache [DELETE]
func (h *handler) Invalidate(c *gin.Context) {
	h.uc.Invalidate()
	response.OK(c, nil)
}
