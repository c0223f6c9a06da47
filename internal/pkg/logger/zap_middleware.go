package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

// PrincipalIDKey is the echo context key the auth middleware stores the caller id under
const PrincipalIDKey = "principal_id"

// ZapEchoMiddleware logs every request through the Zap logger
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo render the error so the logged status is the real one
				c.Error(err)
			}

			principalID := "anonymous"
			if id := c.Get(PrincipalIDKey); id != nil {
				principalID = fmt.Sprintf("%v", id)
			}

			logger.LogHTTPRequest(
				c.Request().Method,
				path,
				c.RealIP(),
				principalID,
				c.Response().Header().Get(echo.HeaderXRequestID),
				c.Response().Status,
				time.Since(start),
				err,
			)

			return nil
		}
	}
}
