// Package session owns the server-side session records that bearer tokens are bound to.
package session

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	jwtpkg "github.com/piresc/docshare/internal/pkg/jwt"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/store"
	"github.com/piresc/docshare/internal/utils"
)

const sessionIDBytes = 32

// ErrInvalid is returned for any token that does not resolve to a live session
var ErrInvalid = apperror.New(apperror.KindSessionInvalid, "Invalid or expired token")

//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks github.com/piresc/docshare/internal/pkg/session Manager

// Manager creates, validates and revokes sessions
type Manager interface {
	Create(ctx context.Context, principalID string, principalType models.PrincipalType) (*models.IssuedToken, error)
	Validate(ctx context.Context, token string) (*models.SessionClaims, error)
	Invalidate(ctx context.Context, principalType models.PrincipalType, principalID, sessionID string) error
	Refresh(ctx context.Context, claims *models.SessionClaims) (*models.IssuedToken, error)
}

// SessionManager is the store-backed Manager. It also runs the expiry sweep.
type SessionManager struct {
	store         store.SessionStore
	signer        *jwtpkg.Signer
	ttl           time.Duration
	sweepInterval time.Duration
	now           func() time.Time

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewSessionManager creates a manager. Zero durations fall back to 24h sessions and an hourly sweep.
func NewSessionManager(sessions store.SessionStore, signer *jwtpkg.Signer, cfg models.SessionConfig) *SessionManager {
	m := &SessionManager{
		store:         sessions,
		signer:        signer,
		ttl:           cfg.TTL,
		sweepInterval: cfg.SweepInterval,
		now:           time.Now,
	}
	if m.ttl <= 0 {
		m.ttl = 24 * time.Hour
	}
	if m.sweepInterval <= 0 {
		m.sweepInterval = time.Hour
	}
	return m
}

// WithClock replaces the time source
func (m *SessionManager) WithClock(now func() time.Time) *SessionManager {
	m.now = now
	return m
}

// HashSessionID is the form a session identifier is stored in
func HashSessionID(sessionID string) string {
	sum := sha256.Sum256([]byte(sessionID))
	return hex.EncodeToString(sum[:])
}

// Create persists a new active session and signs a token for it
func (m *SessionManager) Create(ctx context.Context, principalID string, principalType models.PrincipalType) (*models.IssuedToken, error) {
	if !principalType.Valid() {
		return nil, apperror.New(apperror.KindInternal, "unknown principal type")
	}

	sessionID, err := utils.GenerateRandomHex(sessionIDBytes)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to generate session id", err)
	}

	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	record := &models.Session{
		ID:            uuid.New().String(),
		PrincipalID:   principalID,
		PrincipalType: principalType,
		TokenHash:     HashSessionID(sessionID),
		ExpiresAt:     expiresAt,
		IsActive:      true,
		CreatedAt:     now,
	}
	if err := m.store.CreateSession(ctx, record); err != nil {
		return nil, err
	}

	token, err := m.signer.GenerateToken(principalID, sessionID, principalType, now, expiresAt)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to sign token", err)
	}

	logger.Debug("Session created",
		logger.String("principal_id", principalID),
		logger.String("principal_type", string(principalType)))

	return &models.IssuedToken{Token: token, SessionID: sessionID, ExpiresAt: expiresAt}, nil
}

// Validate checks the token and requires its session to be active and unexpired.
// Every rejection is ErrInvalid; only store failures surface as other kinds.
func (m *SessionManager) Validate(ctx context.Context, token string) (*models.SessionClaims, error) {
	claims, err := m.signer.ValidateToken(token)
	if err != nil {
		return nil, ErrInvalid
	}

	record, err := m.store.GetActiveSession(ctx, claims.PrincipalType, claims.PrincipalID, HashSessionID(claims.SessionID))
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			return nil, ErrInvalid
		}
		return nil, err
	}
	if !record.Live(m.now()) {
		return nil, ErrInvalid
	}

	return claims, nil
}

// Invalidate deactivates a session. Unknown or inactive sessions are not an error.
func (m *SessionManager) Invalidate(ctx context.Context, principalType models.PrincipalType, principalID, sessionID string) error {
	err := m.store.DeactivateSession(ctx, principalType, principalID, HashSessionID(sessionID))
	if err != nil && !apperror.Is(err, apperror.KindNotFound) {
		return err
	}
	return nil
}

// Refresh retires the session behind claims and issues a new one
func (m *SessionManager) Refresh(ctx context.Context, claims *models.SessionClaims) (*models.IssuedToken, error) {
	if err := m.Invalidate(ctx, claims.PrincipalType, claims.PrincipalID, claims.SessionID); err != nil {
		return nil, err
	}
	return m.Create(ctx, claims.PrincipalID, claims.PrincipalType)
}

// SweepExpired deactivates every active session whose expiry has passed
func (m *SessionManager) SweepExpired(ctx context.Context) (int64, error) {
	n, err := m.store.DeactivateExpiredSessions(ctx, m.now().UTC())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		logger.Info("Expired sessions deactivated", logger.Int64("count", n))
	}
	return n, nil
}

// Start runs the sweep on a ticker until Stop is called or ctx is done
func (m *SessionManager) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.done = make(chan struct{})

	go m.run(ctx, m.done)
	logger.Info("Session sweep started", logger.Duration("interval", m.sweepInterval))
}

func (m *SessionManager) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(m.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if _, err := m.SweepExpired(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Warn("Session sweep failed", logger.Err(err))
			}
		}
	}
}

// Stop cancels the sweep and waits for it to exit
func (m *SessionManager) Stop() {
	m.mu.Lock()
	cancel, done := m.cancel, m.done
	m.cancel, m.done = nil, nil
	m.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
	logger.Info("Session sweep stopped")
}

var _ Manager = (*SessionManager)(nil)
