package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps dashboard endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Get)
	rg.DELETE("/cache", h.Invalidate)
}
