package middleware

import (
	"github.com/gin-gonic/gin"

	"productivity-assistant/pkg/response"
)

// Auth rejects requests while no backend session is established.
func (m Middleware) Auth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := m.holder.Current(); !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
