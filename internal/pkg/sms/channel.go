// Package sms delivers one-time codes and notifications to mobile numbers.
package sms

import (
	"context"
)

// VerificationStatus is a provider's verdict on a submitted code
type VerificationStatus string

const (
	StatusApproved VerificationStatus = "approved"
	StatusDenied   VerificationStatus = "denied"
)

// DeliveryResult describes an accepted send
type DeliveryResult struct {
	Success    bool   `json:"success"`
	ProviderID string `json:"providerId,omitempty"`
	Status     string `json:"status,omitempty"`
}

//go:generate mockgen -destination=mocks/mock_channel.go -package=mocks github.com/piresc/docshare/internal/pkg/sms Channel

// Channel is a delivery channel for codes and messages
type Channel interface {
	Name() string
	Configured() bool
	Send(ctx context.Context, to, body string) (*DeliveryResult, error)
	StartVerification(ctx context.Context, to string) (*DeliveryResult, error)
	CheckVerification(ctx context.Context, to, code string) (VerificationStatus, error)
}
