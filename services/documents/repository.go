package documents

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/docshare/services/documents DocumentsRepo

// DocumentsRepo is the read side of documents plus the user's own record
type DocumentsRepo interface {
	ListActiveDocuments(ctx context.Context, offset, limit int) ([]*models.Document, int, error)
	GetActiveDocument(ctx context.Context, id string) (*models.Document, error)
	SearchDocuments(ctx context.Context, query string, limit int) ([]*models.Document, error)

	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateUserMobile(ctx context.Context, id, mobile string) (*models.User, error)
}
