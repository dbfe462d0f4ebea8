package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps voice endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/status", h.Status)
	rg.POST("/toggle", h.Toggle)
	rg.POST("/cancel", h.Cancel)
	rg.DELETE("/transcript", h.ClearTranscript)
	rg.DELETE("/error", h.ClearError)
	rg.POST("/speak", h.Speak)
	rg.GET("/voices", h.Voices)
}
