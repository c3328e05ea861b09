package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	mem "voyage/pkg/memcache"
	"voyage/pkg/utils"
)

// AIRateLimit throttles AI endpoints per caller. It must run after
// JWTAuthMiddleware; anonymous callers share the client IP as their key.
func AIRateLimit(store mem.LimiterStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetString(ctxUserID)
		if key == "" {
			key = "ip:" + c.ClientIP()
		}

		if !store.Allow(key) {
			utils.RespondError(c, http.StatusTooManyRequests, "Too many AI requests, please slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}
