package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger writes one line per request. Health probes are not logged.
func Logger() gin.HandlerFunc {
	return gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/health"},
		Formatter: func(p gin.LogFormatterParams) string {
			path := p.Path
			if path == "" {
				path = "/"
			}
			return fmt.Sprintf("%s %3d %-7s %s %v %s\n",
				p.TimeStamp.Format(time.RFC3339),
				p.StatusCode,
				p.Method,
				path,
				p.Latency,
				p.ClientIP,
			)
		},
	})
}
