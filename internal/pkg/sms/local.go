package sms

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
)

// LocalChannel issues its own codes and keeps them in Redis.
// It stands in for a provider in development and never approves a code it did not issue.
type LocalChannel struct {
	redis       *redis.Client
	ttl         time.Duration
	revealCodes bool
}

// NewLocalChannel creates a Redis-backed channel. revealCodes logs issued codes and
// must stay off outside debug mode.
func NewLocalChannel(client *redis.Client, ttl time.Duration, revealCodes bool) *LocalChannel {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &LocalChannel{redis: client, ttl: ttl, revealCodes: revealCodes}
}

func (l *LocalChannel) Name() string     { return "local" }
func (l *LocalChannel) Configured() bool { return l.redis != nil }

// GenerateCode returns a uniformly random 6-digit code
func GenerateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("failed to generate code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// StartVerification stores a fresh code for the number, replacing any previous one
func (l *LocalChannel) StartVerification(ctx context.Context, to string) (*DeliveryResult, error) {
	code, err := GenerateCode()
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to issue code", err)
	}

	if err := l.redis.Set(ctx, constants.OTPCodeKey(to), code, l.ttl).Err(); err != nil {
		return nil, apperror.Dependency("failed to store code", err)
	}

	fields := []logger.Field{logger.Mobile(to), logger.Duration("ttl", l.ttl)}
	if l.revealCodes {
		fields = append(fields, logger.String("code", code))
	}
	logger.Info("Verification code issued", fields...)

	return &DeliveryResult{Success: true, Status: "pending"}, nil
}

// CheckVerification compares the submitted code with the stored one and consumes it on approval
func (l *LocalChannel) CheckVerification(ctx context.Context, to, code string) (VerificationStatus, error) {
	key := constants.OTPCodeKey(to)
	stored, err := l.redis.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return StatusDenied, nil
	}
	if err != nil {
		return "", apperror.Dependency("failed to read code", err)
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return StatusDenied, nil
	}

	if err := l.redis.Del(ctx, key).Err(); err != nil {
		logger.Warn("Failed to consume verification code", logger.Mobile(to), logger.Err(err))
	}
	return StatusApproved, nil
}

// Send only logs the message
func (l *LocalChannel) Send(ctx context.Context, to, body string) (*DeliveryResult, error) {
	logger.Info("Message delivered locally", logger.Mobile(to), logger.Int("length", len(body)))
	return &DeliveryResult{Success: true, Status: "logged"}, nil
}

// Disabled is the channel used when nothing can deliver messages
type Disabled struct{}

func (Disabled) Name() string     { return "disabled" }
func (Disabled) Configured() bool { return false }

func (Disabled) Send(ctx context.Context, to, body string) (*DeliveryResult, error) {
	return nil, apperror.Dependency("sms delivery not configured", nil)
}

func (Disabled) StartVerification(ctx context.Context, to string) (*DeliveryResult, error) {
	return nil, apperror.Dependency("sms delivery not configured", nil)
}

func (Disabled) CheckVerification(ctx context.Context, to, code string) (VerificationStatus, error) {
	return "", apperror.Dependency("sms delivery not configured", nil)
}

var (
	_ Channel = (*TwilioChannel)(nil)
	_ Channel = (*LocalChannel)(nil)
	_ Channel = Disabled{}
)
