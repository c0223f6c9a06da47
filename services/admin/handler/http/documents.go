package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

// ListDocuments handles GET /api/admin/documents
func (h *AdminHandler) ListDocuments(c echo.Context) error {
	page, limit := utils.ParsePagination(c)

	docs, pagination, err := h.adminUC.ListDocuments(c.Request().Context(), page, limit)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return c.JSON(http.StatusOK, documentListResponse{Success: true, Documents: docs, Pagination: pagination})
}

// CreateDocument handles POST /api/admin/documents
func (h *AdminHandler) CreateDocument(c echo.Context) error {
	account, ok := middleware.AdminFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	var req models.DocumentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	doc, err := h.adminUC.CreateDocument(c.Request().Context(), account.ID, &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	middleware.SetAuditResourceID(c, doc.ID)
	return utils.SuccessResponse(c, http.StatusCreated, "Document created successfully", doc)
}

// UpdateDocument handles PUT /api/admin/documents/:id
func (h *AdminHandler) UpdateDocument(c echo.Context) error {
	var req models.DocumentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, middleware.ValidationDetails(err))
	}

	doc, err := h.adminUC.UpdateDocument(c.Request().Context(), c.Param("id"), &req)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document updated successfully", doc)
}

// DeleteDocument handles DELETE /api/admin/documents/:id
func (h *AdminHandler) DeleteDocument(c echo.Context) error {
	if err := h.adminUC.DeleteDocument(c.Request().Context(), c.Param("id")); err != nil {
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Document deleted successfully", nil)
}
