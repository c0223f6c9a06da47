package models

import "time"

// OTPStrategy selects how one-time codes are issued and checked for a deployment
type OTPStrategy string

const (
	StrategyTOTP     OTPStrategy = "totp"
	StrategyProvider OTPStrategy = "provider"
)

// RequestOTPRequest asks for a code for a mobile number
type RequestOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
}

// VerifyOTPRequest submits a code for a mobile number
type VerifyOTPRequest struct {
	Mobile string `json:"mobile" validate:"required"`
	OTP    string `json:"otp" validate:"required,numeric,min=4,max=8"`
}

// OTPChallenge is the outcome of request-otp
type OTPChallenge struct {
	Method         string `json:"method"`
	AlreadyEnabled bool   `json:"enabled,omitempty"`
	Secret         string `json:"secret,omitempty"`
	OTPAuthURL     string `json:"otpauthUrl,omitempty"`
	QRCode         string `json:"qrCode,omitempty"`
	Sent           bool   `json:"sent,omitempty"`
	Message        string `json:"message"`
}

// AuthResponse is returned by every login endpoint
type AuthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message,omitempty"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	Principal Principal `json:"principal"`
}

// Pagination describes a page of a listing
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination computes the page count for a listing
func NewPagination(page, limit, total int) Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
