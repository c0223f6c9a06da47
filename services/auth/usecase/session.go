package usecase

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
)

// Logout invalidates the caller's current session only
func (u *AuthUC) Logout(ctx context.Context, userID, sessionID string) error {
	if err := u.sessions.Invalidate(ctx, models.PrincipalUser, userID, sessionID); err != nil {
		return err
	}
	logger.Info("User logged out", logger.String("user_id", userID))
	return nil
}

// Refresh replaces the current session with a new one
func (u *AuthUC) Refresh(ctx context.Context, userID, sessionID string) (*models.AuthResponse, error) {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	issued, err := u.sessions.Refresh(ctx, &models.SessionClaims{
		PrincipalID:   userID,
		SessionID:     sessionID,
		PrincipalType: models.PrincipalUser,
	})
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{
		Success:   true,
		Message:   msgSessionRefreshed,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Principal: user.Principal(),
	}, nil
}

// GetProfile returns the authenticated user's record
func (u *AuthUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "User not found")
		}
		return nil, err
	}
	return user, nil
}
