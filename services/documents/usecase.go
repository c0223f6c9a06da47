package documents

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/docshare/services/documents DocumentsUC

// DocumentsUC is what a signed-in user can read and change
type DocumentsUC interface {
	ListDocuments(ctx context.Context, page, limit int) ([]*models.Document, models.Pagination, error)
	GetDocument(ctx context.Context, id string) (*models.Document, error)
	SearchDocuments(ctx context.Context, query string) ([]*models.Document, error)

	GetProfile(ctx context.Context, userID string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error)
}
