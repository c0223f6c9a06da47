package apperror

import (
	"context"
	"errors"
	"net/http"
	"time"
)

// Kind classifies an error for propagation across layers
type Kind int

const (
	// KindInternal is an unexpected fault
	KindInternal Kind = iota
	// KindNotFound means the identity or resource does not exist
	KindNotFound
	// KindInvalidCredential means a password or one-time code did not match
	KindInvalidCredential
	// KindLocked means the login-attempt guard rejected the request
	KindLocked
	// KindSessionInvalid covers expired, revoked and malformed tokens
	KindSessionInvalid
	// KindDependencyUnavailable means the store or the delivery channel failed or timed out
	KindDependencyUnavailable
	// KindInvalidInput means the request failed validation
	KindInvalidInput
	// KindConflict means a uniqueness constraint was violated
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidCredential:
		return "invalid_credential"
	case KindLocked:
		return "locked"
	case KindSessionInvalid:
		return "session_invalid"
	case KindDependencyUnavailable:
		return "dependency_unavailable"
	case KindInvalidInput:
		return "invalid_input"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// GenericMessage is what callers see for internal and dependency failures
const GenericMessage = "Internal server error"

// Error is the application error carried between layers
type Error struct {
	Kind       Kind
	Message    string
	Err        error
	RetryAfter time.Duration
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an error of the given kind around a cause
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// Locked creates a lockout error that tells the caller when to retry
func Locked(message string, retryAfter time.Duration) *Error {
	return &Error{Kind: KindLocked, Message: message, RetryAfter: retryAfter}
}

// Dependency wraps a store or provider failure. Deadline errors keep their cause for logging.
func Dependency(message string, err error) *Error {
	return Wrap(KindDependencyUnavailable, message, err)
}

// KindOf returns the kind of err, or KindInternal when err is not an *Error
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindDependencyUnavailable
	}
	return KindInternal
}

// Is reports whether err is of the given kind
func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

// HTTPStatus maps a kind to its response status
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidCredential, KindSessionInvalid:
		return http.StatusUnauthorized
	case KindLocked:
		return http.StatusTooManyRequests
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage returns the message safe to show to a caller
func PublicMessage(err error) string {
	var appErr *Error
	if !errors.As(err, &appErr) {
		return GenericMessage
	}
	switch appErr.Kind {
	case KindInternal, KindDependencyUnavailable:
		return GenericMessage
	}
	return appErr.Message
}

// RetryAfter returns the lockout wait carried by err, if any
func RetryAfter(err error) time.Duration {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.RetryAfter
	}
	return 0
}
