package middleware

import (
	"productivity-assistant/internal/auth"
	"productivity-assistant/pkg/log"
)

type Middleware struct {
	l       log.Logger
	holder  *auth.Holder
	limiter *rateLimiter
}

// New builds the middleware set. rateLimitPerMin <= 0 disables rate limiting.
func New(l log.Logger, holder *auth.Holder, rateLimitPerMin int) Middleware {
	m := Middleware{
		l:      l,
		holder: holder,
	}
	if rateLimitPerMin > 0 {
		m.limiter = newRateLimiter(rateLimitPerMin)
	}
	return m
}
