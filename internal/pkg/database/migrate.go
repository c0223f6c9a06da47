package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/docshare/internal/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor for admin password hashes
const BcryptCost = 12

var schema = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id            UUID PRIMARY KEY,
		username      VARCHAR(50) NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_admins_username ON admins (username)`,
	`CREATE TABLE IF NOT EXISTS users (
		id              UUID PRIMARY KEY,
		mobile_number   VARCHAR(16) NOT NULL,
		is_verified     BOOLEAN NOT NULL DEFAULT FALSE,
		totp_secret     TEXT,
		totp_enabled    BOOLEAN NOT NULL DEFAULT FALSE,
		login_attempts  INTEGER NOT NULL DEFAULT 0,
		last_attempt_at TIMESTAMPTZ,
		last_login      TIMESTAMPTZ,
		created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_users_mobile_number ON users (mobile_number)`,
	`CREATE TABLE IF NOT EXISTS admin_sessions (
		id           UUID PRIMARY KEY,
		principal_id UUID NOT NULL,
		token_hash   CHAR(64) NOT NULL,
		expires_at   TIMESTAMPTZ NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_admin_sessions_lookup ON admin_sessions (principal_id, token_hash)`,
	`CREATE INDEX IF NOT EXISTS idx_admin_sessions_expiry ON admin_sessions (is_active, expires_at)`,
	`CREATE TABLE IF NOT EXISTS user_sessions (
		id           UUID PRIMARY KEY,
		principal_id UUID NOT NULL,
		token_hash   CHAR(64) NOT NULL,
		expires_at   TIMESTAMPTZ NOT NULL,
		is_active    BOOLEAN NOT NULL DEFAULT TRUE,
		created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sessions_lookup ON user_sessions (principal_id, token_hash)`,
	`CREATE INDEX IF NOT EXISTS idx_user_sessions_expiry ON user_sessions (is_active, expires_at)`,
	`CREATE TABLE IF NOT EXISTS documents (
		id                UUID PRIMARY KEY,
		title             VARCHAR(255) NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		google_drive_link TEXT NOT NULL,
		file_id           TEXT,
		created_by        UUID NOT NULL,
		is_active         BOOLEAN NOT NULL DEFAULT TRUE,
		created_at        TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at        TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_documents_active ON documents (is_active, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS audit_logs (
		id          UUID PRIMARY KEY,
		user_type   VARCHAR(16) NOT NULL,
		user_id     TEXT,
		action      VARCHAR(64) NOT NULL,
		resource    VARCHAR(64),
		resource_id TEXT,
		details     TEXT NOT NULL DEFAULT '',
		ip_address  VARCHAR(64) NOT NULL DEFAULT '',
		user_agent  TEXT NOT NULL DEFAULT '',
		status_code INTEGER NOT NULL DEFAULT 0,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_audit_logs_created_at ON audit_logs (created_at DESC)`,
}

// Migrate creates tables and indexes when they do not exist yet
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range schema {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration: %w", err)
	}
	return nil
}

// SeedAdmin inserts the default admin when the admins table is empty
func SeedAdmin(ctx context.Context, db *sqlx.DB, username, password string) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		uuid.New().String(), username, string(hash), time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert default admin: %w", err)
	}

	logger.Info("Default admin created", logger.String("username", username))
	return nil
}
