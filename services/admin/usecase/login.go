package usecase

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/database"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"golang.org/x/crypto/bcrypt"
)

var errInvalidCredentials = apperror.New(apperror.KindInvalidCredential, constants.MsgInvalidCredentials)

var (
	dummyOnce sync.Once
	dummyHash []byte
)

// unknownUsernameHash is compared against when the username is unknown so both
// failures cost one bcrypt run
func unknownUsernameHash() []byte {
	dummyOnce.Do(func() {
		dummyHash, _ = bcrypt.GenerateFromPassword([]byte(uuid.New().String()), database.BcryptCost)
	})
	return dummyHash
}

// Login checks admin credentials and opens an admin session
func (u *AdminUC) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	account, err := u.repo.GetAdminByUsername(ctx, username)
	if err != nil {
		if !apperror.Is(err, apperror.KindNotFound) {
			return nil, err
		}
		_ = bcrypt.CompareHashAndPassword(unknownUsernameHash(), []byte(password))
		logger.Warn("Admin login failed", logger.String("username", username), logger.String("reason", "unknown username"))
		return nil, errInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		logger.Warn("Admin login failed", logger.String("username", username), logger.String("reason", "bad password"))
		return nil, errInvalidCredentials
	}

	issued, err := u.sessions.Create(ctx, account.ID, models.PrincipalAdmin)
	if err != nil {
		return nil, err
	}

	logger.Info("Admin logged in", logger.String("admin_id", account.ID), logger.String("username", account.Username))

	return &models.AuthResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Principal: account.Principal(),
	}, nil
}

// Logout invalidates the admin's current session
func (u *AdminUC) Logout(ctx context.Context, adminID, sessionID string) error {
	if err := u.sessions.Invalidate(ctx, models.PrincipalAdmin, adminID, sessionID); err != nil {
		return err
	}
	logger.Info("Admin logged out", logger.String("admin_id", adminID))
	return nil
}

// GetProfile returns the admin account
func (u *AdminUC) GetProfile(ctx context.Context, adminID string) (*models.Admin, error) {
	account, err := u.repo.GetAdminByID(ctx, adminID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, apperror.New(apperror.KindNotFound, "Admin not found")
		}
		return nil, err
	}
	return account, nil
}
