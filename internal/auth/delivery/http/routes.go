package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps auth endpoints. None of them require a session.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/login", h.Login)
	rg.GET("/google/start", h.StartGoogle)
	rg.GET("/google/callback", h.GoogleCallback)
	rg.GET("/me", h.Me)
	rg.GET("/status", h.Status)
	rg.POST("/logout", h.Logout)
}
