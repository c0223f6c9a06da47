package store

import (
	"context"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
)

const userColumns = `id, mobile_number, is_verified, totp_secret, totp_enabled, login_attempts,
	last_attempt_at, last_login, created_at, updated_at`

// GetUserByMobile retrieves a user by mobile number
func (p *Postgres) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE mobile_number = $1`, mobile)
	if err != nil {
		return nil, translate("get user", "user", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user by id
func (p *Postgres) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	if !validID(id) {
		return nil, notFound("user")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := p.db.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get user", "user", err)
	}
	return &user, nil
}

// CreateUser inserts a user; a taken mobile number is a conflict
func (p *Postgres) CreateUser(ctx context.Context, user *models.User) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx,
		`INSERT INTO users (id, mobile_number, is_verified, totp_secret, totp_enabled, login_attempts, created_at, updated_at)
		 VALUES (:id, :mobile_number, :is_verified, :totp_secret, :totp_enabled, :login_attempts, :created_at, :updated_at)`,
		user)
	return translate("create user", "user", err)
}

// ListUsers returns a page of users, newest first, and the total count
func (p *Postgres) ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var total int
	if err := p.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM users`); err != nil {
		return nil, 0, translate("count users", "user", err)
	}

	users := []*models.User{}
	err := p.db.SelectContext(ctx, &users,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, translate("list users", "user", err)
	}
	return users, total, nil
}

// DeleteUser removes a user
func (p *Postgres) DeleteUser(ctx context.Context, id string) error {
	return p.execOne(ctx, "delete user", `DELETE FROM users WHERE id = $1`, id)
}

// SetUserVerified flips the verified flag
func (p *Postgres) SetUserVerified(ctx context.Context, id string, verified bool) error {
	return p.execOne(ctx, "verify user",
		`UPDATE users SET is_verified = $2, updated_at = NOW() WHERE id = $1`, id, verified)
}

// UpdateUserMobile changes a user's mobile number and returns the updated record
func (p *Postgres) UpdateUserMobile(ctx context.Context, id, mobile string) (*models.User, error) {
	if !validID(id) {
		return nil, notFound("user")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var user models.User
	err := p.db.GetContext(ctx, &user,
		`UPDATE users SET mobile_number = $2, updated_at = NOW() WHERE id = $1 RETURNING `+userColumns, id, mobile)
	if err != nil {
		return nil, translate("update user", "user", err)
	}
	return &user, nil
}

// SetTOTPSecret stores a newly issued secret only while the user has none.
// A user that already holds one is a Conflict; the caller re-reads it.
func (p *Postgres) SetTOTPSecret(ctx context.Context, id, secret string) error {
	err := p.execOne(ctx, "store totp secret",
		`UPDATE users SET totp_secret = $2, totp_enabled = FALSE, updated_at = NOW()
		 WHERE id = $1 AND totp_secret IS NULL`, id, secret)
	if apperror.Is(err, apperror.KindNotFound) && validID(id) {
		return errSecretIssued
	}
	return err
}

// EnableTOTP marks the stored secret as confirmed
func (p *Postgres) EnableTOTP(ctx context.Context, id string) error {
	return p.execOne(ctx, "enable totp",
		`UPDATE users SET totp_enabled = TRUE, updated_at = NOW() WHERE id = $1 AND totp_secret IS NOT NULL`, id)
}

// ResetTOTP clears the secret so the next request issues a new one
func (p *Postgres) ResetTOTP(ctx context.Context, id string) error {
	return p.execOne(ctx, "reset totp",
		`UPDATE users SET totp_secret = NULL, totp_enabled = FALSE, updated_at = NOW() WHERE id = $1`, id)
}

// IncrementLoginAttempts bumps the failure counter in a single statement and returns the new value
func (p *Postgres) IncrementLoginAttempts(ctx context.Context, id string, at time.Time) (int, error) {
	if !validID(id) {
		return 0, notFound("user")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var attempts int
	err := p.db.GetContext(ctx, &attempts,
		`UPDATE users SET login_attempts = login_attempts + 1, last_attempt_at = $2, updated_at = $2
		 WHERE id = $1 RETURNING login_attempts`, id, at)
	if err != nil {
		return 0, translate("increment login attempts", "user", err)
	}
	return attempts, nil
}

// ResetLoginAttempts clears the failure counter
func (p *Postgres) ResetLoginAttempts(ctx context.Context, id string) error {
	return p.execOne(ctx, "reset login attempts",
		`UPDATE users SET login_attempts = 0, last_attempt_at = NULL, updated_at = NOW() WHERE id = $1`, id)
}

// RecordLoginSuccess clears the failure counter and stamps the login time
func (p *Postgres) RecordLoginSuccess(ctx context.Context, id string, at time.Time) error {
	return p.execOne(ctx, "record login",
		`UPDATE users SET login_attempts = 0, last_attempt_at = NULL, last_login = $2, updated_at = $2 WHERE id = $1`, id, at)
}

// execOne runs a statement that must touch exactly one user row
func (p *Postgres) execOne(ctx context.Context, op, query string, id string, args ...interface{}) error {
	if !validID(id) {
		return notFound("user")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	res, err := p.db.ExecContext(ctx, query, append([]interface{}{id}, args...)...)
	if err != nil {
		return translate(op, "user", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return translate(op, "user", err)
	}
	if rows == 0 {
		return notFound("user")
	}
	return nil
}
