package auth

import (
	"context"
	"time"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/docshare/services/auth AuthRepo

// AuthRepo is the user state the login flow reads and mutates
type AuthRepo interface {
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	SetTOTPSecret(ctx context.Context, id, secret string) error
	EnableTOTP(ctx context.Context, id string) error
	IncrementLoginAttempts(ctx context.Context, id string, at time.Time) (int, error)
	ResetLoginAttempts(ctx context.Context, id string) error
	RecordLoginSuccess(ctx context.Context, id string, at time.Time) error
}
