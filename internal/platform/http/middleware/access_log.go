package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"social_backend/internal/platform/logger"
)

// AccessLog emits one log line per request after it completes.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		attrs := []any{
			"status", c.Writer.Status(),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"latency", time.Since(start),
			"remote_addr", c.ClientIP(),
		}
		if ua := c.Request.UserAgent(); ua != "" {
			attrs = append(attrs, "user_agent", ua)
		}

		log := logger.FromContext(c.Request.Context())
		level := slog.LevelInfo
		if c.Writer.Status() >= 500 {
			level = slog.LevelError
		}
		log.Log(c.Request.Context(), level, "request completed", attrs...)
	}
}
