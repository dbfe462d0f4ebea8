package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps email endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/recent", h.Recent)
	rg.GET("/summary", h.Summary)
	rg.POST("/sync", h.Sync)
	rg.POST("/send", h.Send)
	rg.POST("/:id/replies", h.SuggestReply)
}
