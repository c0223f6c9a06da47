package models

import (
	"time"
)

// Session is the server-side record a bearer token is bound to.
// Sessions are never deleted; only IsActive changes.
type Session struct {
	ID            string        `json:"id" db:"id"`
	PrincipalID   string        `json:"principalId" db:"principal_id"`
	PrincipalType PrincipalType `json:"principalType" db:"-"`
	TokenHash     string        `json:"-" db:"token_hash"`
	ExpiresAt     time.Time     `json:"expiresAt" db:"expires_at"`
	IsActive      bool          `json:"isActive" db:"is_active"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
}

// Live reports whether the session is active and unexpired at now
func (s *Session) Live(now time.Time) bool {
	return s.IsActive && now.Before(s.ExpiresAt)
}

// SessionClaims is what a valid bearer token resolves to
type SessionClaims struct {
	PrincipalID   string
	SessionID     string
	PrincipalType PrincipalType
	IssuedAt      time.Time
	ExpiresAt     time.Time
}

// IssuedToken is the result of creating a session
type IssuedToken struct {
	Token     string
	SessionID string
	ExpiresAt time.Time
}
