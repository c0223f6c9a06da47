package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
	"github.com/piresc/docshare/services/auth"
)

// AuthHandler handles the user login endpoints
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type otpResponse struct {
	Success bool `json:"success"`
	*models.OTPChallenge
}

type statusResponse struct {
	Success       bool             `json:"success"`
	Authenticated bool             `json:"authenticated"`
	Principal     models.Principal `json:"principal"`
}

// RequestOTP handles POST /api/auth/request-otp
func (h *AuthHandler) RequestOTP(c echo.Context) error {
	var req models.RequestOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	challenge, err := h.authUC.RequestOTP(c.Request().Context(), req.Mobile)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	return c.JSON(http.StatusOK, otpResponse{Success: true, OTPChallenge: challenge})
}

// VerifyOTP handles POST /api/auth/verify-otp
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	resp, err := h.authUC.VerifyOTP(c.Request().Context(), req.Mobile, req.OTP)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditPrincipal(c, resp.Principal)
	middleware.SetAuditResourceID(c, resp.Principal.PrincipalID())
	return c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.authUC.Logout(c.Request().Context(), user.ID, middleware.SessionIDFrom(c)); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Refresh handles POST /api/auth/refresh
func (h *AuthHandler) Refresh(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	resp, err := h.authUC.Refresh(c.Request().Context(), user.ID, middleware.SessionIDFrom(c))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, resp)
}

// Status handles GET /api/auth/status
func (h *AuthHandler) Status(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	return c.JSON(http.StatusOK, statusResponse{Success: true, Authenticated: true, Principal: user})
}

// Profile handles GET /api/auth/profile
func (h *AuthHandler) Profile(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.authUC.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		logger.Warn("Failed to load profile", logger.String("user_id", user.ID), logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}
