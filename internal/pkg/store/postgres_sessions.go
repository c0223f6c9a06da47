package store

import (
	"context"
	"fmt"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
)

func sessionTable(t models.PrincipalType) (string, error) {
	switch t {
	case models.PrincipalAdmin:
		return "admin_sessions", nil
	case models.PrincipalUser:
		return "user_sessions", nil
	}
	return "", apperror.New(apperror.KindInternal, fmt.Sprintf("unknown principal type %q", t))
}

// CreateSession inserts an active session in the table for its principal type
func (p *Postgres) CreateSession(ctx context.Context, session *models.Session) error {
	table, err := sessionTable(session.PrincipalType)
	if err != nil {
		return err
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err = p.db.NamedExecContext(ctx,
		`INSERT INTO `+table+` (id, principal_id, token_hash, expires_at, is_active, created_at)
		 VALUES (:id, :principal_id, :token_hash, :expires_at, :is_active, :created_at)`, session)
	return translate("create session", "session", err)
}

// GetActiveSession finds an active session by owner and token hash. Expiry is left to the caller.
func (p *Postgres) GetActiveSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) (*models.Session, error) {
	table, err := sessionTable(principalType)
	if err != nil {
		return nil, err
	}
	if !validID(principalID) {
		return nil, notFound("session")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var session models.Session
	err = p.db.GetContext(ctx, &session,
		`SELECT id, principal_id, token_hash, expires_at, is_active, created_at FROM `+table+`
		 WHERE principal_id = $1 AND token_hash = $2 AND is_active = TRUE`, principalID, tokenHash)
	if err != nil {
		return nil, translate("get session", "session", err)
	}
	session.PrincipalType = principalType
	return &session, nil
}

// DeactivateSession marks a session inactive. Missing or already inactive sessions are not an error.
func (p *Postgres) DeactivateSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) error {
	table, err := sessionTable(principalType)
	if err != nil {
		return err
	}
	if !validID(principalID) {
		return nil
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err = p.db.ExecContext(ctx,
		`UPDATE `+table+` SET is_active = FALSE WHERE principal_id = $1 AND token_hash = $2 AND is_active = TRUE`,
		principalID, tokenHash)
	return translate("deactivate session", "session", err)
}

// DeactivateExpiredSessions flips every expired, still active session in both tables
func (p *Postgres) DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var total int64
	for _, table := range []string{"admin_sessions", "user_sessions"} {
		res, err := p.db.ExecContext(ctx,
			`UPDATE `+table+` SET is_active = FALSE WHERE is_active = TRUE AND expires_at < $1`, now)
		if err != nil {
			return total, translate("sweep sessions", "session", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, translate("sweep sessions", "session", err)
		}
		total += n
	}
	return total, nil
}
