package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows cross-origin requests from the configured
// comma-separated origin allowlist.
func CORS(allowedOrigins string) gin.HandlerFunc {
	origins := strings.Split(allowedOrigins, ",")

	return func(c *gin.Context) {
		requestOrigin := c.GetHeader("Origin")

		var allowedOrigin string
		for _, origin := range origins {
			if strings.TrimSpace(origin) == requestOrigin {
				allowedOrigin = requestOrigin
				break
			}
		}

		if allowedOrigin != "" {
			c.Header("Access-Control-Allow-Origin", allowedOrigin)
		}

		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")
		c.Header("Access-Control-Expose-Headers", "Content-Length")
		c.Header("Access-Control-Allow-Credentials", "true")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
