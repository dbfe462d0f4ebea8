package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// List godoc
// @Summary     List events
// @Description Lists events of [start, end], or of a relative window such as "tomorrow" or "next 7 days". Defaults to today.
// @Tags        Calendar
// @Produce     json
// @Param       start  query string false "RFC3339 start"
// @Param       end    query string false "RFC3339 end"
// @Param       window query string false "Relative window"
// @Param       limit  query int    false "Max events (default 50)"
// @Success     200 {object} eventsResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/events [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventsResp(events))
}

// Create godoc
// @Summary     Create an event
// @Tags        Calendar
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Event"
// @Success     200 {object} eventResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/calendar/events [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	ev, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventResp(ev))
}

// Upcoming godoc
// @Summary     Upcoming events
// @Tags        Calendar
// @Produce     json
// @Param       limit query int false "Max events (default 5)"
// @Success     200 {object} eventsResp
// @Router      /api/v1/calendar/upcoming [GET]
func (h *handler) Upcoming(c *gin.Context) {
	ctx := c.Request.Context()

	var req upcomingReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, err)
		return
	}

	events, err := h.uc.Upcoming(ctx, req.Limit)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newEventsResp(events))
}

// Sync godoc
// @Summary     Sync the calendar
// @Tags        Calendar
// @Produce     json
// @Success     200 {object} syncResp
// @Failure     502 {object} response.Resp "Backend error"
// @Router      /api/v1/calendar/sync [POST]
func (h *handler) Sync(c *gin.Context) {
	ctx := c.Request.Context()

	out, err := h.uc.Sync(ctx)
	if err != nil {
		h.l.Errorf(ctx, "calendar.delivery.Sync: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, syncResp{Message: out.Message, Synced: out.Synced})
}
