package models

import (
	"time"
)

// User is a mobile-number principal provisioned by an admin
type User struct {
	ID            string     `json:"id" db:"id"`
	MobileNumber  string     `json:"mobileNumber" db:"mobile_number"`
	IsVerified    bool       `json:"isVerified" db:"is_verified"`
	TOTPSecret    *string    `json:"-" db:"totp_secret"`
	TOTPEnabled   bool       `json:"totpEnabled" db:"totp_enabled"`
	LoginAttempts int        `json:"-" db:"login_attempts"`
	LastAttemptAt *time.Time `json:"-" db:"last_attempt_at"`
	LastLogin     *time.Time `json:"lastLogin,omitempty" db:"last_login"`
	CreatedAt     time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time  `json:"updatedAt" db:"updated_at"`
}

// HasSecret reports whether a TOTP secret has been issued
func (u *User) HasSecret() bool {
	return u.TOTPSecret != nil && *u.TOTPSecret != ""
}

// Secret returns the TOTP secret or an empty string
func (u *User) Secret() string {
	if u.TOTPSecret == nil {
		return ""
	}
	return *u.TOTPSecret
}

// Principal returns the user variant of the resolved principal
func (u *User) Principal() *UserPrincipal {
	return &UserPrincipal{
		ID:           u.ID,
		MobileNumber: u.MobileNumber,
		IsVerified:   u.IsVerified,
	}
}

// CreateUserRequest is the admin payload for provisioning a user
type CreateUserRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// VerifyUserRequest is the admin payload for marking a user verified
type VerifyUserRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// UpdateProfileRequest is the user payload for profile updates
type UpdateProfileRequest struct {
	MobileNumber *string `json:"mobile_number"`
}
