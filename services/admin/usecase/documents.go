package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

var errDocumentNotFound = apperror.New(apperror.KindNotFound, "Document not found")

func documentNotFound(err error) error {
	if apperror.Is(err, apperror.KindNotFound) {
		return errDocumentNotFound
	}
	return err
}

func fileID(link string) *string {
	if id, ok := utils.ExtractDriveFileID(link); ok {
		return &id
	}
	return nil
}

// ListDocuments returns one page of active documents
func (u *AdminUC) ListDocuments(ctx context.Context, page, limit int) ([]*models.Document, models.Pagination, error) {
	docs, total, err := u.repo.ListActiveDocuments(ctx, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return docs, models.NewPagination(page, limit, total), nil
}

// CreateDocument shares a new Drive link
func (u *AdminUC) CreateDocument(ctx context.Context, adminID string, req *models.DocumentRequest) (*models.Document, error) {
	now := u.now().UTC()
	link := strings.TrimSpace(req.GoogleDriveLink)
	doc := &models.Document{
		ID:              uuid.New().String(),
		Title:           utils.SanitizeString(req.Title),
		Description:     utils.SanitizeString(req.Description),
		GoogleDriveLink: link,
		FileID:          fileID(link),
		CreatedBy:       adminID,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := u.repo.CreateDocument(ctx, doc); err != nil {
		return nil, err
	}

	logger.Info("Document created", logger.String("document_id", doc.ID), logger.String("admin_id", adminID))
	return doc, nil
}

// UpdateDocument rewrites the editable fields of an active document
func (u *AdminUC) UpdateDocument(ctx context.Context, id string, req *models.DocumentRequest) (*models.Document, error) {
	doc, err := u.repo.GetActiveDocument(ctx, id)
	if err != nil {
		return nil, documentNotFound(err)
	}

	link := strings.TrimSpace(req.GoogleDriveLink)
	doc.Title = utils.SanitizeString(req.Title)
	doc.Description = utils.SanitizeString(req.Description)
	doc.GoogleDriveLink = link
	doc.FileID = fileID(link)
	doc.UpdatedAt = u.now().UTC()

	if err := u.repo.UpdateDocument(ctx, doc); err != nil {
		return nil, documentNotFound(err)
	}

	logger.Info("Document updated", logger.String("document_id", id))
	return doc, nil
}

// DeleteDocument hides a document from users
func (u *AdminUC) DeleteDocument(ctx context.Context, id string) error {
	if err := u.repo.SoftDeleteDocument(ctx, id); err != nil {
		return documentNotFound(err)
	}
	logger.Info("Document deleted", logger.String("document_id", id))
	return nil
}
