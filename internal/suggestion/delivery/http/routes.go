package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps suggestion endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.POST("/generate", h.Generate)
	rg.POST("/:id/accept", h.Accept)
	rg.POST("/:id/dismiss", h.Dismiss)
}
