package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/resolvia-inc/resolvia/internal/infrastructure/ratelimit"
	"github.com/resolvia-inc/resolvia/internal/shared/logger"
	"github.com/resolvia-inc/resolvia/internal/shared/utils"
)

// RateLimit enforces the fixed-window limit per client IP. When the limiter
// backend is unavailable the request is allowed; throttling is protection,
// not a dependency.
func RateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := limiter.Allow(c.Request.Context(), "ip:"+c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable, allowing request", "error", err)
			c.Next()
			return
		}

		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
