package otp

import (
	"context"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/sms"
)

// ProviderEngine leaves code generation and checking to a delivery channel.
// No secret is stored locally.
type ProviderEngine struct {
	channel sms.Channel
	timeout time.Duration
}

// NewProviderEngine wraps channel; every call is bounded by timeout
func NewProviderEngine(channel sms.Channel, timeout time.Duration) *ProviderEngine {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &ProviderEngine{channel: channel, timeout: timeout}
}

func (e *ProviderEngine) Strategy() models.OTPStrategy { return models.StrategyProvider }

// Channel returns the wrapped delivery channel
func (e *ProviderEngine) Channel() sms.Channel { return e.channel }

func (e *ProviderEngine) Request(ctx context.Context, user *models.User) (*Challenge, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	if _, err := e.channel.StartVerification(ctx, user.MobileNumber); err != nil {
		return nil, asDependency("failed to send code", err)
	}
	return &Challenge{Method: MethodSMS, Sent: true}, nil
}

func (e *ProviderEngine) Check(ctx context.Context, user *models.User, code string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	status, err := e.channel.CheckVerification(ctx, user.MobileNumber, code)
	if err != nil {
		return false, asDependency("failed to check code", err)
	}
	return status == sms.StatusApproved, nil
}

func asDependency(msg string, err error) error {
	if apperror.Is(err, apperror.KindDependencyUnavailable) {
		return err
	}
	return apperror.Dependency(msg, err)
}

var (
	_ Engine = (*TOTPEngine)(nil)
	_ Engine = (*ProviderEngine)(nil)
)
