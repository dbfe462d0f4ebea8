package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps chat endpoints to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	sessions := rg.Group("/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.DELETE("/:id", h.CloseSession)
		sessions.POST("/:id/history", h.LoadHistory)
		sessions.GET("/:id/messages", h.GetSession)
		sessions.POST("/:id/messages", h.SendMessage)
		sessions.DELETE("/:id/messages", h.ClearHistory)
		sessions.POST("/:id/messages/voice", h.SendVoice)
	}
}
