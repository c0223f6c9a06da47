package middleware

import (
	"github.com/labstack/echo/v4"
)

const contentSecurityPolicy = "default-src 'self'; script-src 'self'; style-src 'self' 'unsafe-inline' https://fonts.googleapis.com; " +
	"font-src 'self' https://fonts.gstatic.com; img-src 'self' data: https:; " +
	"connect-src 'self' https://api.twilio.com https://www.googleapis.com"

// SecurityHeadersMiddleware sets the response headers browsers use to harden the API
func SecurityHeadersMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderXContentTypeOptions, "nosniff")
			h.Set(echo.HeaderXFrameOptions, "SAMEORIGIN")
			h.Set(echo.HeaderReferrerPolicy, "no-referrer")
			h.Set(echo.HeaderContentSecurityPolicy, contentSecurityPolicy)
			h.Set("X-DNS-Prefetch-Control", "off")
			return next(c)
		}
	}
}
