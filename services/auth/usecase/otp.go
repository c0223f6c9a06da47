package usecase

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/lockout"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/otp"
	"github.com/piresc/docshare/internal/utils"
)

var (
	errInvalidMobile = apperror.New(apperror.KindInvalidInput, constants.MsgInvalidMobile)
	errUnknownMobile = apperror.New(apperror.KindNotFound, constants.MsgInvalidMobileOrOTP)
	errInvalidCode   = apperror.New(apperror.KindInvalidCredential, constants.MsgInvalidMobileOrOTP)
)

const (
	msgOTPSent          = "OTP sent"
	msgTOTPEnabled      = "TOTP already enabled. Use your authenticator app."
	msgTOTPEnrollment   = "Scan the QR code with your authenticator app, then submit the current code."
	msgLoginSuccessful  = "Login successful"
	msgSessionRefreshed = "Token refreshed"
)

// admit resolves the caller for both entry points and applies the attempt guard.
// Unknown and unverified numbers are indistinguishable from each other.
func (u *AuthUC) admit(ctx context.Context, mobile string) (*models.User, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, errInvalidMobile
	}

	user, err := u.repo.GetUserByMobile(ctx, normalized)
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, errUnknownMobile
		}
		return nil, err
	}
	if !user.IsVerified {
		return nil, errUnknownMobile
	}

	decision := u.guard.EvaluateUser(user)
	if decision.ResetCounter {
		if err := u.repo.ResetLoginAttempts(ctx, user.ID); err != nil {
			return nil, err
		}
		user.LoginAttempts = 0
		user.LastAttemptAt = nil
	}
	if decision.State == lockout.Locked {
		logger.Warn("Login attempt while locked",
			logger.String("user_id", user.ID),
			logger.Duration("retry_after", decision.RetryAfter))
		return nil, apperror.Locked(constants.MsgAccountLocked, decision.RetryAfter)
	}
	return user, nil
}

// RequestOTP issues a challenge for a verified user
func (u *AuthUC) RequestOTP(ctx context.Context, mobile string) (*models.OTPChallenge, error) {
	user, err := u.admit(ctx, mobile)
	if err != nil {
		return nil, err
	}

	challenge, err := u.issue(ctx, user)
	if err != nil {
		return nil, err
	}

	logger.Info("OTP challenge issued",
		logger.String("user_id", user.ID),
		logger.Mobile(user.MobileNumber),
		logger.String("method", challenge.Method),
		logger.Bool("new_secret", challenge.NewSecret))

	public := challenge.Public()
	public.Message = challengeMessage(public)
	return public, nil
}

// issue asks the engine for a challenge and persists a new secret. When a concurrent
// request stored one first, the stored secret is re-read and handed out instead.
func (u *AuthUC) issue(ctx context.Context, user *models.User) (*otp.Challenge, error) {
	challenge, err := u.engine.Request(ctx, user)
	if err != nil || !challenge.NewSecret {
		return challenge, err
	}

	err = u.repo.SetTOTPSecret(ctx, user.ID, challenge.Secret)
	if !apperror.Is(err, apperror.KindConflict) {
		return challenge, err
	}

	stored, err := u.repo.GetUserByID(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	challenge, err = u.engine.Request(ctx, stored)
	if err != nil {
		return nil, err
	}
	if challenge.NewSecret {
		return nil, apperror.New(apperror.KindInternal, "totp secret changed during issue")
	}
	return challenge, nil
}

func challengeMessage(c *models.OTPChallenge) string {
	switch {
	case c.Method == otp.MethodSMS:
		return msgOTPSent
	case c.AlreadyEnabled:
		return msgTOTPEnabled
	}
	return msgTOTPEnrollment
}

// VerifyOTP checks a code and opens a session on success.
// A failed increment is logged and never changes the rejection.
func (u *AuthUC) VerifyOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error) {
	user, err := u.admit(ctx, mobile)
	if err != nil {
		return nil, err
	}

	ok, err := u.engine.Check(ctx, user, code)
	if err != nil {
		return nil, err
	}

	now := u.guard.Now()
	if !ok {
		attempts, incErr := u.repo.IncrementLoginAttempts(ctx, user.ID, now)
		if incErr != nil {
			logger.Warn("Failed to record failed login attempt",
				logger.String("user_id", user.ID),
				logger.Err(incErr))
		} else if u.guard.LocksAt(attempts) {
			logger.Warn("User locked after failed attempts",
				logger.String("user_id", user.ID),
				logger.Int("attempts", attempts))
		}
		return nil, errInvalidCode
	}

	if err := u.repo.RecordLoginSuccess(ctx, user.ID, now); err != nil {
		return nil, err
	}
	if u.engine.Strategy() == models.StrategyTOTP && !user.TOTPEnabled {
		if err := u.repo.EnableTOTP(ctx, user.ID); err != nil {
			return nil, err
		}
		user.TOTPEnabled = true
	}

	issued, err := u.sessions.Create(ctx, user.ID, models.PrincipalUser)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in",
		logger.String("user_id", user.ID),
		logger.Mobile(user.MobileNumber))

	return &models.AuthResponse{
		Success:   true,
		Message:   msgLoginSuccessful,
		Token:     issued.Token,
		ExpiresAt: issued.ExpiresAt,
		Principal: user.Principal(),
	}, nil
}
