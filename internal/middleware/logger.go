package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"productivity-assistant/pkg/log"
)

const requestIDHeader = "X-Request-ID"

// RequestLogger tags each request with an id and logs its outcome.
func (m Middleware) RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Header(requestIDHeader, id)
		ctx := log.WithRequestID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		latency := time.Since(start)
		switch {
		case status >= 500:
			m.l.Errorf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
		case status >= 400:
			m.l.Warnf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
		default:
			m.l.Debugf(ctx, "%s %s -> %d (%s)", c.Request.Method, c.FullPath(), status, latency)
		}
	}
}
