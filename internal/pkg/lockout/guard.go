// Package lockout decides whether a user may attempt a one-time code.
package lockout

import (
	"time"

	"github.com/piresc/docshare/internal/pkg/models"
)

// State of the guard for one user
type State int

const (
	Open State = iota
	Locked
)

func (s State) String() string {
	if s == Locked {
		return "locked"
	}
	return "open"
}

// Decision is the outcome of evaluating a user's attempt history
type Decision struct {
	State State
	// ResetCounter is set when the window has elapsed since the last failure.
	// The caller persists the reset before proceeding.
	ResetCounter bool
	RetryAfter   time.Duration
}

// Guard evaluates attempts against a threshold and a window. It holds no state;
// the counter lives on the user record.
type Guard struct {
	MaxAttempts int
	Window      time.Duration
	now         func() time.Time
}

// NewGuard creates a guard from config
func NewGuard(cfg models.LockoutConfig) *Guard {
	g := &Guard{MaxAttempts: cfg.MaxAttempts, Window: cfg.Window, now: time.Now}
	if g.MaxAttempts <= 0 {
		g.MaxAttempts = 5
	}
	if g.Window <= 0 {
		g.Window = 15 * time.Minute
	}
	return g
}

// WithClock replaces the time source; used by tests
func (g *Guard) WithClock(now func() time.Time) *Guard {
	g.now = now
	return g
}

// Now returns the guard's current time
func (g *Guard) Now() time.Time {
	return g.now()
}

// Evaluate applies the lockout rules to a counter and the time of the last failure
func (g *Guard) Evaluate(attempts int, lastAttemptAt *time.Time) Decision {
	if attempts <= 0 {
		return Decision{State: Open}
	}
	if lastAttemptAt == nil {
		// a counter without a timestamp cannot be aged out; treat it as stale
		return Decision{State: Open, ResetCounter: true}
	}

	elapsed := g.now().Sub(*lastAttemptAt)
	if elapsed >= g.Window {
		return Decision{State: Open, ResetCounter: true}
	}
	if attempts >= g.MaxAttempts {
		return Decision{State: Locked, RetryAfter: g.Window - elapsed}
	}
	return Decision{State: Open}
}

// EvaluateUser is Evaluate on a user's stored counter
func (g *Guard) EvaluateUser(user *models.User) Decision {
	return g.Evaluate(user.LoginAttempts, user.LastAttemptAt)
}

// LocksAt reports whether reaching attempts trips the guard
func (g *Guard) LocksAt(attempts int) bool {
	return attempts >= g.MaxAttempts
}
