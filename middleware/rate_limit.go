package middleware

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"quill/limiter"

	"github.com/gin-gonic/gin"
)

// RateLimit enforces a fixed quota of requests per window for each
// route/client pair. The client key is the authenticated user id when
// available, the client IP otherwise. Requests over quota are rejected
// before the handler runs. A failing store lets the request through
// rather than taking the API down with it.
func RateLimit(store limiter.Store, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		client, exists := c.Get("user_id")
		if !exists {
			client = c.ClientIP()
		}

		key := fmt.Sprintf("rate_limit:%s:%v", c.FullPath(), client)

		count, err := store.Incr(c.Request.Context(), key, window)
		if err != nil {
			log.Printf("Rate limit check failed for %s: %v", key, err)
			c.Next()
			return
		}

		if count > int64(limit) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
