package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/services/admin/handler/http"
)

// Handler wires the admin endpoints to their middleware
type Handler struct {
	adminHandler *http.AdminHandler
	adminAuth    echo.MiddlewareFunc
	recorder     audit.Recorder
}

// NewHandler creates the admin route handler
func NewHandler(adminHandler *http.AdminHandler, adminAuth echo.MiddlewareFunc, recorder audit.Recorder) *Handler {
	return &Handler{
		adminHandler: adminHandler,
		adminAuth:    adminAuth,
		recorder:     recorder,
	}
}

func (h *Handler) audited(action, resource string) echo.MiddlewareFunc {
	return middleware.AuditMiddleware(h.recorder, action, resource)
}

// RegisterRoutes mounts /admin under api. loginLimit guards the password endpoint.
func (h *Handler) RegisterRoutes(api *echo.Group, loginLimit echo.MiddlewareFunc) {
	g := api.Group("/admin")
	g.POST("/login", h.adminHandler.Login, loginLimit, h.audited("ADMIN_LOGIN", "admin"))

	protected := g.Group("", h.adminAuth)
	protected.POST("/logout", h.adminHandler.Logout, h.audited("ADMIN_LOGOUT", "admin"))
	protected.GET("/profile", h.adminHandler.Profile)

	protected.POST("/users/verify", h.adminHandler.VerifyUser, h.audited("VERIFY_USER", "user"))
	protected.POST("/users", h.adminHandler.CreateUser, h.audited("CREATE_USER", "user"))
	protected.GET("/users", h.adminHandler.ListUsers)
	protected.GET("/users/:id", h.adminHandler.GetUser)
	protected.DELETE("/users/:id", h.adminHandler.DeleteUser, h.audited("DELETE_USER", "user"))
	protected.POST("/users/:id/reset-totp", h.adminHandler.ResetTOTP, h.audited("RESET_USER_TOTP", "user"))

	protected.GET("/documents", h.adminHandler.ListDocuments)
	protected.POST("/documents", h.adminHandler.CreateDocument, h.audited("CREATE_DOCUMENT", "document"))
	protected.PUT("/documents/:id", h.adminHandler.UpdateDocument, h.audited("UPDATE_DOCUMENT", "document"))
	protected.DELETE("/documents/:id", h.adminHandler.DeleteDocument, h.audited("DELETE_DOCUMENT", "document"))
}
