package constants

import "fmt"

// Redis key formats
const (
	KeyOTPCode   = "otp:code:%s"
	KeyRateLimit = "rate:%s:%s"
)

// OTPCodeKey is where a locally issued code for a mobile number lives
func OTPCodeKey(mobile string) string {
	return fmt.Sprintf(KeyOTPCode, mobile)
}

// RateLimitKey is the counter for one limiter bucket and caller
func RateLimitKey(bucket, identifier string) string {
	return fmt.Sprintf(KeyRateLimit, bucket, identifier)
}
