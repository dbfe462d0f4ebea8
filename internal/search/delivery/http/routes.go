package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps search endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.Search)
	rg.GET("/suggestions", h.Suggestions)
}
