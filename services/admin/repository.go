package admin

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/docshare/services/admin AdminRepo

// AdminRepo is the persistence the admin API needs
type AdminRepo interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)

	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserVerified(ctx context.Context, id string, verified bool) error
	ResetTOTP(ctx context.Context, id string) error

	ListActiveDocuments(ctx context.Context, offset, limit int) ([]*models.Document, int, error)
	GetActiveDocument(ctx context.Context, id string) (*models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) error
	UpdateDocument(ctx context.Context, doc *models.Document) error
	SoftDeleteDocument(ctx context.Context, id string) error
}
