package http

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// List godoc
// @Summary     List tasks
// @Tags        Tasks
// @Produce     json
// @Param       status   query string false "todo|in_progress|completed|cancelled"
// @Param       priority query string false "low|medium|high|urgent"
// @Param       category query string false "Category"
// @Param       limit    query int    false "Page size (default 50, max 100)"
// @Param       offset   query int    false "Offset"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
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

// Create godoc
// @Summary     Create a task
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Task"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	t, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Detail godoc
// @Summary     Get a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	t, err := h.uc.Detail(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Update godoc
// @Summary     Update a task
// @Description Only the fields present in the body are changed.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id   path int       true "Task ID"
// @Param       body body updateReq true "Fields to change"
// @Success     200 {object} taskResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	t, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// Delete godoc
// @Summary     Delete a task
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, nil)
}

// Toggle godoc
// @Summary     Toggle completion
// @Description Completes an open task or reopens a completed one.
// @Tags        Tasks
// @Produce     json
// @Param       id path int true "Task ID"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/toggle [POST]
func (h *handler) Toggle(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processIDParam(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	t, err := h.uc.Toggle(ctx, id)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}

// CheckItem godoc
// @Summary     Check a checklist item
// @Description Sets a markdown checkbox of the description. Checking the last open item completes the task.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       id    path int          true "Task ID"
// @Param       index path int          true "Checkbox index, from 0"
// @Param       body  body checkItemReq true "State"
// @Success     200 {object} taskResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/tasks/{id}/checklist/{index} [PUT]
func (h *handler) CheckItem(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processCheckItemReq(c)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	t, err := h.uc.CheckItem(ctx, input)
	if err != nil {
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, newTaskResp(t))
}
