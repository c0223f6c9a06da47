package usecase

import (
	"github.com/piresc/docshare/internal/pkg/lockout"
	"github.com/piresc/docshare/internal/pkg/otp"
	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/piresc/docshare/services/auth"
)

// AuthUC implements auth.AuthUC
type AuthUC struct {
	repo     auth.AuthRepo
	engine   otp.Engine
	sessions session.Manager
	guard    *lockout.Guard
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	repo auth.AuthRepo,
	engine otp.Engine,
	sessions session.Manager,
	guard *lockout.Guard,
) *AuthUC {
	return &AuthUC{
		repo:     repo,
		engine:   engine,
		sessions: sessions,
		guard:    guard,
	}
}

var _ auth.AuthUC = (*AuthUC)(nil)
