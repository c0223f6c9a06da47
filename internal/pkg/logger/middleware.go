package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
)

// GinMiddleware logs every request handled by a gin engine
func GinMiddleware(logger *AppLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		if raw := c.Request.URL.RawQuery; raw != "" {
			path = path + "?" + raw
		}

		c.Next()

		var err error
		if len(c.Errors) > 0 {
			err = c.Errors.Last().Err
		}

		// nil when the nrgin middleware is not installed
		txn := nrgin.Transaction(c)

		logger.LogHTTPRequest(
			txn,
			c.Request.Method,
			path,
			c.ClientIP(),
			c.GetHeader("X-Request-ID"),
			c.Writer.Status(),
			time.Since(start),
			err,
		)
	}
}
