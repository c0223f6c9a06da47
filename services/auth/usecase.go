package auth

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/docshare/services/auth AuthUC

// AuthUC is the user one-time-code login flow
type AuthUC interface {
	RequestOTP(ctx context.Context, mobile string) (*models.OTPChallenge, error)
	VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error)

	// session lifecycle for an authenticated user
	Logout(ctx context.Context, userID, sessionID string) error
	Refresh(ctx context.Context, userID, sessionID string) (*models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*models.User, error)
}
