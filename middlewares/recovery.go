package middlewares

import (
	"io"
	"net/http"

	"github.com/emobies/emobies-api/logging"
	"github.com/gin-gonic/gin"
)

// Recovery turns a handler panic into a 500 and reports it through logger.
func Recovery(logger logging.Logger) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, err any) {
		logger.Error("Recovered from panic",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"error", err,
		)
		c.AbortWithStatus(http.StatusInternalServerError)
	})
}
