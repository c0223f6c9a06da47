package handler

import (
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/services/documents/handler/http"
)

// Handler wires the user endpoints to their middleware
type Handler struct {
	documentsHandler *http.DocumentsHandler
	userAuth         echo.MiddlewareFunc
	recorder         audit.Recorder
}

// NewHandler creates the user route handler
func NewHandler(documentsHandler *http.DocumentsHandler, userAuth echo.MiddlewareFunc, recorder audit.Recorder) *Handler {
	return &Handler{
		documentsHandler: documentsHandler,
		userAuth:         userAuth,
		recorder:         recorder,
	}
}

// RegisterRoutes mounts /user under api; every route needs a user session
func (h *Handler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/user", h.userAuth)

	g.GET("/documents", h.documentsHandler.ListDocuments)
	g.GET("/documents/search", h.documentsHandler.SearchDocuments,
		middleware.AuditMiddleware(h.recorder, "SEARCH_DOCUMENTS", "document"))
	g.GET("/documents/:id", h.documentsHandler.GetDocument,
		middleware.AuditMiddleware(h.recorder, "VIEW_DOCUMENT", "document"))

	g.GET("/profile", h.documentsHandler.GetProfile)
	g.PUT("/profile", h.documentsHandler.UpdateProfile,
		middleware.AuditMiddleware(h.recorder, "UPDATE_PROFILE", "user"))
}
