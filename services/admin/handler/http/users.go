package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

// CreateUser handles POST /api/admin/users
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req models.CreateUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	user, err := h.adminUC.CreateUser(c.Request().Context(), req.Mobile)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditResourceID(c, user.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully", user)
}

// ListUsers handles GET /api/admin/users
func (h *AdminHandler) ListUsers(c echo.Context) error {
	page, limit := utils.ParsePagination(c)

	users, pagination, err := h.adminUC.ListUsers(c.Request().Context(), page, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, userListResponse{Success: true, Users: users, Pagination: pagination})
}

// GetUser handles GET /api/admin/users/:id
func (h *AdminHandler) GetUser(c echo.Context) error {
	user, err := h.adminUC.GetUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", user)
}

// DeleteUser handles DELETE /api/admin/users/:id
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	if err := h.adminUC.DeleteUser(c.Request().Context(), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User deleted successfully", nil)
}

// VerifyUser handles POST /api/admin/users/verify
func (h *AdminHandler) VerifyUser(c echo.Context) error {
	var req models.VerifyUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	user, already, err := h.adminUC.VerifyUser(c.Request().Context(), req.Mobile)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditResourceID(c, user.ID)
	if already {
		return utils.SuccessResponse(c, http.StatusOK, "User is already verified", user)
	}
	return utils.SuccessResponse(c, http.StatusOK, "User verified successfully", user)
}

// ResetTOTP handles POST /api/admin/users/:id/reset-totp
func (h *AdminHandler) ResetTOTP(c echo.Context) error {
	if err := h.adminUC.ResetTOTP(c.Request().Context(), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "TOTP reset successfully", nil)
}
