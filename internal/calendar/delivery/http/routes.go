package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps calendar endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/events", h.List)
	rg.POST("/events", h.Create)
	rg.GET("/upcoming", h.Upcoming)
	rg.POST("/sync", h.Sync)
}
