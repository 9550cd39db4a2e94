package middleware

import (
	"github.com/gin-gonic/gin"

	pkgResponse "daybalance/pkg/response"
)

// RateLimit bounds the request rate on the routes it wraps. Coach
// routes sit behind it so a chatty client cannot exhaust the LLM
// budget; task CRUD stays unthrottled.
func (m Middleware) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.limiter != nil && !m.limiter.Allow() {
			m.l.Warnf(c.Request.Context(), "rate limit exceeded for %s", c.FullPath())
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
