package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps task endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("", h.List)
	rg.POST("", h.Create)
	rg.GET("/:id", h.Detail)
	rg.PUT("/:id", h.Update)
	rg.DELETE("/:id", h.Delete)
	rg.POST("/:id/toggle", h.Toggle)
	rg.PUT("/:id/checklist/:index", h.CheckItem)
}
