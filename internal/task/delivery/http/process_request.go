package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"productivity-assistant/internal/task"
)

func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, task.ErrInvalidID
	}
	return id, nil
}

// processCheckItemReq binds the checked flag and the URI id and index.
func (h *handler) processCheckItemReq(c *gin.Context) (task.CheckItemInput, error) {
	id, err := h.processIDParam(c)
	if err != nil {
		return task.CheckItemInput{}, err
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		return task.CheckItemInput{}, task.ErrInvalidIndex
	}
	var req checkItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return task.CheckItemInput{}, err
	}
	return task.CheckItemInput{ID: id, Index: index, Checked: *req.Checked}, nil
}

// processUpdateReq binds the update body and the URI id.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	id, err := h.processIDParam(c)
	if err != nil {
		return req, err
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = id
	return req, nil
}
