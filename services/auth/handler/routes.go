package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/services/auth/handler/http"
)

// Handler wires the auth endpoints to their middleware
type Handler struct {
	authHandler     *http.AuthHandler
	providerHandler *http.ProviderHandler
	userAuth        echo.MiddlewareFunc
	recorder        audit.Recorder
}

// NewHandler creates the auth route handler
func NewHandler(
	authHandler *http.AuthHandler,
	providerHandler *http.ProviderHandler,
	userAuth echo.MiddlewareFunc,
	recorder audit.Recorder,
) *Handler {
	return &Handler{
		authHandler:     authHandler,
		providerHandler: providerHandler,
		userAuth:        userAuth,
		recorder:        recorder,
	}
}

// RegisterRoutes mounts /auth and /twilio under api. otpLimit guards code issuance.
func (h *Handler) RegisterRoutes(api *echo.Group, otpLimit echo.MiddlewareFunc) {
	g := api.Group("/auth")

	g.POST("/request-otp", h.authHandler.RequestOTP,
		otpLimit, middleware.AuditMiddleware(h.recorder, "USER_OTP_REQUEST", "user"))
	g.POST("/verify-otp", h.authHandler.VerifyOTP,
		middleware.AuditMiddleware(h.recorder, "USER_LOGIN", "user"))

	protected := g.Group("", h.userAuth)
	protected.POST("/logout", h.authHandler.Logout, middleware.AuditMiddleware(h.recorder, "USER_LOGOUT", "user"))
	protected.POST("/refresh", h.authHandler.Refresh, middleware.AuditMiddleware(h.recorder, "USER_TOKEN_REFRESH", "user"))
	protected.GET("/status", h.authHandler.Status)
	protected.GET("/profile", h.authHandler.Profile)

	twilio := api.Group("/twilio")
	twilio.GET("/status", h.providerHandler.Status)
	twilio.POST("/sms-callback", h.providerHandler.SMSCallback)
}
