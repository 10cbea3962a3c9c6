package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/chwc/clinicops/internal/pkg/logger"
)

// RequestLogger logs each request with its latency and status
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("clientIP", c.ClientIP()).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
