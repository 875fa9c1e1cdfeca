package middlewares

import (
	"time"

	"github.com/emobies/emobies-api/logging"
	"github.com/gin-gonic/gin"
)

// RequestLogger logs the method, path, status and duration of each request.
func RequestLogger(logger logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info("Request served",
			"method", c.Request.Method,
			"path", path,
			"client_ip", c.ClientIP(),
			"status", c.Writer.Status(),
			"duration_ms", time.Since(start).Milliseconds(),
		)
		if len(c.Errors) > 0 {
			logger.Warn("Request errors", "path", path, "errors", c.Errors.String())
		}
	}
}
