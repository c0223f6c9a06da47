package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
	"github.com/piresc/docshare/services/documents"
)

// DocumentsHandler handles the /api/user endpoints
type DocumentsHandler struct {
	documentsUC documents.DocumentsUC
}

// NewDocumentsHandler creates a new documents handler
func NewDocumentsHandler(documentsUC documents.DocumentsUC) *DocumentsHandler {
	return &DocumentsHandler{documentsUC: documentsUC}
}

type documentListResponse struct {
	Success    bool               `json:"success"`
	Documents  []*models.Document `json:"documents"`
	Pagination models.Pagination  `json:"pagination"`
}

type searchResponse struct {
	Success   bool               `json:"success"`
	Query     string             `json:"query"`
	Count     int                `json:"count"`
	Documents []*models.Document `json:"documents"`
}

// ListDocuments handles GET /api/user/documents
func (h *DocumentsHandler) ListDocuments(c echo.Context) error {
	page, limit := utils.ParsePagination(c)

	docs, pagination, err := h.documentsUC.ListDocuments(c.Request().Context(), page, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, documentListResponse{Success: true, Documents: docs, Pagination: pagination})
}

// GetDocument handles GET /api/user/documents/:id
func (h *DocumentsHandler) GetDocument(c echo.Context) error {
	doc, err := h.documentsUC.GetDocument(c.Request().Context(), c.Param("id"))
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", doc)
}

// SearchDocuments handles GET /api/user/documents/search?q=
func (h *DocumentsHandler) SearchDocuments(c echo.Context) error {
	query := c.QueryParam("q")

	docs, err := h.documentsUC.SearchDocuments(c.Request().Context(), query)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	middleware.SetAuditDetail(c, "query", utils.Truncate(query, 100))
	return c.JSON(http.StatusOK, searchResponse{Success: true, Query: query, Count: len(docs), Documents: docs})
}

// GetProfile handles GET /api/user/profile
func (h *DocumentsHandler) GetProfile(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	profile, err := h.documentsUC.GetProfile(c.Request().Context(), user.ID)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "", profile)
}

// UpdateProfile handles PUT /api/user/profile
func (h *DocumentsHandler) UpdateProfile(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	profile, err := h.documentsUC.UpdateProfile(c.Request().Context(), user.ID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditResourceID(c, user.ID)
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", profile)
}
