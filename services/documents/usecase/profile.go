package usecase

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/utils"
)

var (
	errUserNotFound  = apperror.New(apperror.KindNotFound, "User not found")
	errNothingToSet  = apperror.New(apperror.KindInvalidInput, "No valid fields to update")
	errInvalidMobile = apperror.New(apperror.KindInvalidInput, constants.MsgInvalidMobile)
	errMobileInUse   = apperror.New(apperror.KindConflict, "Mobile number already in use")
)

// GetProfile returns the caller's own record
func (u *DocumentsUC) GetProfile(ctx context.Context, userID string) (*models.User, error) {
	user, err := u.repo.GetUserByID(ctx, userID)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, errUserNotFound
		}
		return nil, err
	}
	return user, nil
}

// UpdateProfile changes the caller's mobile number
func (u *DocumentsUC) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if req == nil || req.MobileNumber == nil {
		return nil, errNothingToSet
	}
	normalized, ok := utils.ValidateMobile(*req.MobileNumber)
	if !ok {
		return nil, errInvalidMobile
	}

	user, err := u.repo.UpdateUserMobile(ctx, userID, normalized)
	if err != nil {
		switch apperror.KindOf(err) {
		case apperror.KindConflict:
			return nil, errMobileInUse
		case apperror.KindNotFound:
			return nil, errUserNotFound
		}
		return nil, err
	}

	logger.Info("User profile updated", logger.String("user_id", userID), logger.Mobile(normalized))
	return user, nil
}
