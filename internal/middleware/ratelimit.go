package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/binarychai/playlist-backend/internal/logger"
	"github.com/binarychai/playlist-backend/internal/response"
)

// RateLimiter throttles requests per client IP using a Redis counter with a
// rolling-window expiry. Shared across replicas, unlike an in-process bucket.
type RateLimiter struct {
	rdb    *redis.Client
	prefix string
	limit  int64
	window time.Duration
	log    zerolog.Logger
}

// NewRateLimiter creates a RateLimiter allowing `limit` requests per
// `window` per IP under the given key prefix.
func NewRateLimiter(rdb *redis.Client, prefix string, limit int64, window time.Duration, log zerolog.Logger) *RateLimiter {
	return &RateLimiter{
		rdb:    rdb,
		prefix: prefix,
		limit:  limit,
		window: window,
		log:    logger.Component(log, "rate_limiter"),
	}
}

// Middleware returns a Gin middleware that rate-limits requests by IP.
// Redis failures fail open: a broken limiter must not take logins down.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ratelimit:" + rl.prefix + ":" + c.ClientIP()

		count, err := rl.rdb.Incr(c.Request.Context(), key).Result()
		if err != nil {
			rl.log.Warn().Err(err).Msg("rate limit check failed, allowing request")
			c.Next()
			return
		}

		if count == 1 {
			rl.rdb.Expire(c.Request.Context(), key, rl.window)
		}

		if count > rl.limit {
			response.AbortFail(c, http.StatusTooManyRequests, "Too many requests. Please try again later.")
			return
		}

		c.Next()
	}
}
