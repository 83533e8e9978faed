package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"internship-noc-api/config"
)

const rateLimitScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
if current > tonumber(ARGV[2]) then
  return 0
end
return 1
`

var loginLimitScript = redis.NewScript(rateLimitScript)

// LoginRateLimit caps login attempts per client IP with a fixed redis
// window. Without a redis client the limiter lets everything through; a
// redis hiccup also fails open so logins never depend on redis health.
func LoginRateLimit(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if config.RDB == nil || limit <= 0 || window <= 0 {
			c.Next()
			return
		}

		key := "ratelimit:login:" + c.ClientIP()

		ctx, cancel := context.WithTimeout(context.Background(), 250*time.Millisecond)
		defer cancel()
		allowed, err := loginLimitScript.Run(ctx, config.RDB,
			[]string{key}, window.Milliseconds(), limit).Int64()
		if err != nil {
			c.Next()
			return
		}

		if allowed != 1 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts, try again later"})
			c.Abort()
			return
		}

		c.Next()
	}
}
