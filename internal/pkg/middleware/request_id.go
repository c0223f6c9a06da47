package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestIDMiddleware propagates X-Request-ID, generating one when the caller sent none
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.New().String()
			}

			c.Response().Header().Set(echo.HeaderXRequestID, requestID)
			c.Set("request_id", requestID)
			AddAttribute(c, "request.id", requestID)

			return next(c)
		}
	}
}

// RequestIDFrom returns the request id set by RequestIDMiddleware
func RequestIDFrom(c echo.Context) string {
	id, _ := c.Get("request_id").(string)
	return id
}
