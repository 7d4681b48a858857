package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shiningstar/learninglens/internal/app/models/dto"
	"github.com/shiningstar/learninglens/internal/db"
	"github.com/shiningstar/learninglens/internal/pkg/logger"
)

// RateLimiter throttles requests per client IP using redis counters
type RateLimiter struct {
	redis  *db.RedisClient
	limit  int64
	window time.Duration
}

// NewRateLimiter creates a rate limiter allowing limit requests per window
func NewRateLimiter(redis *db.RedisClient, limit int64, window time.Duration) *RateLimiter {
	return &RateLimiter{
		redis:  redis,
		limit:  limit,
		window: window,
	}
}

// Limit rejects requests from an IP once it exceeds the configured rate.
// Redis failures let the request through; throttling is best effort.
func (rl *RateLimiter) Limit(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := db.PrefixRateLimit + action + ":" + c.ClientIP()

		count, err := rl.redis.IncrWithWindow(c.Request.Context(), key, rl.window)
		if err != nil {
			logger.Warn().Err(err).Str("key", key).Msg("Rate limit check failed, allowing request")
			c.Next()
			return
		}

		if count > rl.limit {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeRateLimited, "Too many requests")
			errorDetail = errorDetail.WithDetails("Rate limit exceeded, try again later")

			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.NewErrorResponse(errorDetail))
			return
		}

		c.Next()
	}
}
