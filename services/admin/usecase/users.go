package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

var (
	errInvalidMobile = apperror.New(apperror.KindInvalidInput, constants.MsgInvalidMobile)
	errUserExists    = apperror.New(apperror.KindConflict, "User with this mobile number already exists")
	errUserNotFound  = apperror.New(apperror.KindNotFound, "User not found")
)

func userNotFound(err error) error {
	if apperror.Is(err, apperror.KindNotFound) {
		return errUserNotFound
	}
	return err
}

// CreateUser provisions a verified user and sends the welcome message in the background
func (u *AdminUC) CreateUser(ctx context.Context, mobile string) (*models.User, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, errInvalidMobile
	}

	now := u.now().UTC()
	user := &models.User{
		ID:           uuid.New().String(),
		MobileNumber: normalized,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.repo.CreateUser(ctx, user); err != nil {
		if apperror.Is(err, apperror.KindConflict) {
			return nil, errUserExists
		}
		return nil, err
	}

	logger.Info("User created", logger.String("user_id", user.ID), logger.Mobile(user.MobileNumber))
	u.welcome(user.MobileNumber)
	return user, nil
}

func (u *AdminUC) welcome(mobile string) {
	if u.gateway == nil {
		return
	}
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), welcomeTimeout)
		defer cancel()
		if err := u.gateway.SendWelcome(ctx, mobile); err != nil {
			logger.Warn("Welcome SMS failed", logger.Mobile(mobile), logger.Err(err))
		}
	}()
}

// ListUsers returns one page of users, newest first
func (u *AdminUC) ListUsers(ctx context.Context, page, limit int) ([]*models.User, models.Pagination, error) {
	users, total, err := u.repo.ListUsers(ctx, utils.Offset(page, limit), limit)
	if err != nil {
		return nil, models.Pagination{}, err
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, models.NewPagination(page, limit, total), nil
}

// GetUser returns one user
func (u *AdminUC) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err)
	}
	return user, nil
}

// DeleteUser removes a user and everything tied to it
func (u *AdminUC) DeleteUser(ctx context.Context, id string) error {
	if err := u.repo.DeleteUser(ctx, id); err != nil {
		return userNotFound(err)
	}
	logger.Info("User deleted", logger.String("user_id", id))
	return nil
}

// VerifyUser marks the user behind mobile as verified.
// The boolean reports whether it already was.
func (u *AdminUC) VerifyUser(ctx context.Context, mobile string) (*models.User, bool, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, false, errInvalidMobile
	}

	user, err := u.repo.GetUserByMobile(ctx, normalized)
	if err != nil {
		return nil, false, userNotFound(err)
	}
	if user.IsVerified {
		return user, true, nil
	}

	if err := u.repo.SetUserVerified(ctx, user.ID, true); err != nil {
		return nil, false, userNotFound(err)
	}
	user.IsVerified = true
	logger.Info("User verified", logger.String("user_id", user.ID))
	return user, false, nil
}

// ResetTOTP clears the user's authenticator enrollment
func (u *AdminUC) ResetTOTP(ctx context.Context, id string) error {
	if err := u.repo.ResetTOTP(ctx, id); err != nil {
		return userNotFound(err)
	}
	logger.Info("User TOTP reset", logger.String("user_id", id))
	return nil
}
