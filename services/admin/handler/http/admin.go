package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
	"github.com/piresc/docshare/services/admin"
)

// AdminHandler handles the /api/admin endpoints
type AdminHandler struct {
	adminUC admin.AdminUC
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminUC admin.AdminUC) *AdminHandler {
	return &AdminHandler{adminUC: adminUC}
}

type userListResponse struct {
	Success    bool              `json:"success"`
	Users      []*models.User    `json:"users"`
	Pagination models.Pagination `json:"pagination"`
}

type documentListResponse struct {
	Success    bool               `json:"success"`
	Documents  []*models.Document `json:"documents"`
	Pagination models.Pagination  `json:"pagination"`
}

// Login handles POST /api/admin/login
func (h *AdminHandler) Login(c echo.Context) error {
	var req models.AdminLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	resp, err := h.adminUC.Login(c.Request().Context(), req.Username, req.Password)
	if err != nil {
		middleware.SetAuditDetail(c, "username", req.Username)
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditPrincipal(c, resp.Principal)
	middleware.SetAuditResourceID(c, resp.Principal.PrincipalID())
	return c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/admin/logout
func (h *AdminHandler) Logout(c echo.Context) error {
	account, ok := middleware.AdminFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	if err := h.adminUC.Logout(c.Request().Context(), account.ID, middleware.SessionIDFrom(c)); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// Profile handles GET /api/admin/profile
func (h *AdminHandler) Profile(c echo.Context) error {
	account, ok := middleware.AdminFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.adminUC.GetProfile(c.Request().Context(), account.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}
