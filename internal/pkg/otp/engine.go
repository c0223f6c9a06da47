// Package otp issues and checks one-time codes for users.
package otp

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/sms"
)

const (
	MethodTOTP = "totp"
	MethodSMS  = "sms"
)

// Challenge is what a code request produced for the caller
type Challenge struct {
	Method         string
	AlreadyEnabled bool
	// NewSecret is set when Secret was generated by this request and must be persisted
	NewSecret  bool
	Secret     string
	OTPAuthURL string
	QRCode     string
	Sent       bool
}

// Public strips the challenge down to what may be returned to the caller
func (c *Challenge) Public() *models.OTPChallenge {
	return &models.OTPChallenge{
		Method:         c.Method,
		AlreadyEnabled: c.AlreadyEnabled,
		Secret:         c.Secret,
		OTPAuthURL:     c.OTPAuthURL,
		QRCode:         c.QRCode,
		Sent:           c.Sent,
	}
}

//go:generate mockgen -destination=mocks/mock_engine.go -package=mocks github.com/piresc/docshare/internal/pkg/otp Engine

// Engine issues and checks codes for one deployment-wide strategy
type Engine interface {
	Strategy() models.OTPStrategy
	Request(ctx context.Context, user *models.User) (*Challenge, error)
	Check(ctx context.Context, user *models.User, code string) (bool, error)
}

// NewEngine builds the engine selected by cfg.OTP.Strategy
func NewEngine(cfg *models.Config, channel sms.Channel) Engine {
	if cfg.OTP.Strategy == models.StrategyProvider {
		return NewProviderEngine(channel, cfg.Twilio.Timeout)
	}
	return NewTOTPEngine(cfg.OTP)
}
