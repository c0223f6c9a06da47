package usecase

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

const (
	minQueryLength = 2
	maxQueryLength = 100
	searchLimit    = 50
)

var (
	errDocumentNotFound = apperror.New(apperror.KindNotFound, "Document not found")
	errShortQuery       = apperror.New(apperror.KindInvalidInput, "Search query must be at least 2 characters")
)

// ListDocuments returns one page of active documents, newest first
func (u *DocumentsUC) ListDocuments(ctx context.Context, page, limit int) ([]*models.Document, models.Pagination, error) {
	docs, total, err := u.repo.ListActiveDocuments(ctx, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return docs, models.NewPagination(page, limit, total), nil
}

// GetDocument returns an active document
func (u *DocumentsUC) GetDocument(ctx context.Context, id string) (*models.Document, error) {
	doc, err := u.repo.GetActiveDocument(ctx, id)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, errDocumentNotFound
		}
		return nil, err
	}
	return doc, nil
}

// SearchDocuments matches query against titles and descriptions, ignoring case
func (u *DocumentsUC) SearchDocuments(ctx context.Context, query string) ([]*models.Document, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, errShortQuery
	}
	query = utils.Truncate(query, maxQueryLength)

	docs, err := u.repo.SearchDocuments(ctx, query, searchLimit)
	if err != nil {
		return nil, err
	}
	if docs == nil {
		docs = []*models.Document{}
	}
	return docs, nil
}
