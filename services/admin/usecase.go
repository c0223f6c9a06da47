package admin

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/docshare/services/admin AdminUC

// AdminUC is everything an administrator can do through the API
type AdminUC interface {
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)
	Logout(ctx context.Context, adminID, sessionID string) error
	GetProfile(ctx context.Context, adminID string) (*models.Admin, error)

	CreateUser(ctx context.Context, mobile string) (*models.User, error)
	ListUsers(ctx context.Context, page, limit int) ([]*models.User, models.Pagination, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
	VerifyUser(ctx context.Context, mobile string) (*models.User, bool, error)
	ResetTOTP(ctx context.Context, id string) error

	ListDocuments(ctx context.Context, page, limit int) ([]*models.Document, models.Pagination, error)
	CreateDocument(ctx context.Context, adminID string, req *models.DocumentRequest) (*models.Document, error)
	UpdateDocument(ctx context.Context, id string, req *models.DocumentRequest) (*models.Document, error)
	DeleteDocument(ctx context.Context, id string) error
}
