package constants

// Echo context keys set by middleware
const (
	ContextKeyPrincipal   = "principal"
	ContextKeySessionID   = "session_id"
	ContextKeyPrincipalID = "principal_id"
	ContextKeyAuditDetail = "audit_detail"
	ContextKeyResourceID  = "audit_resource_id"
)

// OTP path messages shared so unknown numbers and bad codes read the same
const (
	MsgInvalidMobileOrOTP = "Invalid mobile number or OTP"
	MsgInvalidCredentials = "Invalid credentials"
	MsgAccountLocked      = "Too many failed attempts. Please try again later."
	MsgAuthFailed         = "Authentication failed"
	MsgInvalidMobile      = "Invalid mobile number format. Use E.164 format (e.g., +1234567890)"
)
