package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/texnokross/texnokross/internal/shared/logger"
	"github.com/texnokross/texnokross/internal/shared/utils"
)

// RateLimiter is a Redis fixed-window counter per client IP. Instances that
// share Redis share the budget.
type RateLimiter struct {
	redisClient *redis.Client
	prefix      string
	limit       int
	window      time.Duration
	logger      logger.Interface
}

func NewRateLimiter(redisClient *redis.Client, prefix string, limit int, window time.Duration, log logger.Interface) *RateLimiter {
	return &RateLimiter{
		redisClient: redisClient,
		prefix:      prefix,
		limit:       limit,
		window:      window,
		logger:      log,
	}
}

// Limit rejects requests over the budget with 429. Redis failures let the
// request through.
func (rl *RateLimiter) Limit() gin.HandlerFunc {
	return func(c *gin.Context) {
		bucket := time.Now().Unix() / int64(rl.window.Seconds())
		key := fmt.Sprintf("%sratelimit:%s:%d", rl.prefix, c.ClientIP(), bucket)
		ctx := c.Request.Context()

		count, err := rl.redisClient.Incr(ctx, key).Result()
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if count == 1 {
			rl.redisClient.Expire(ctx, key, rl.window+time.Second)
		}

		if count > int64(rl.limit) {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "rate limit exceeded, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
