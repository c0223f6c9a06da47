package store

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/piresc/docshare/internal/pkg/models"
)

// Postgres implements Store on sqlx. Every call runs under the configured query timeout.
type Postgres struct {
	db      *sqlx.DB
	timeout time.Duration
}

// NewPostgres creates a postgres-backed store
func NewPostgres(db *sqlx.DB, timeout time.Duration) *Postgres {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Postgres{db: db, timeout: timeout}
}

func (p *Postgres) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.timeout)
}

// Ping checks connectivity
func (p *Postgres) Ping(ctx context.Context) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()
	return translate("ping database", "database", p.db.PingContext(ctx))
}

// GetAdminByUsername retrieves an admin by username
func (p *Postgres) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var admin models.Admin
	err := p.db.GetContext(ctx, &admin,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = $1`, username)
	if err != nil {
		return nil, translate("get admin", "admin", err)
	}
	return &admin, nil
}

// GetAdminByID retrieves an admin by id
func (p *Postgres) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	if !validID(id) {
		return nil, notFound("admin")
	}
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var admin models.Admin
	err := p.db.GetContext(ctx, &admin,
		`SELECT id, username, password_hash, created_at FROM admins WHERE id = $1`, id)
	if err != nil {
		return nil, translate("get admin", "admin", err)
	}
	return &admin, nil
}

// CreateAdmin inserts an admin; a taken username is a conflict
func (p *Postgres) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx,
		`INSERT INTO admins (id, username, password_hash, created_at)
		 VALUES (:id, :username, :password_hash, :created_at)`, admin)
	return translate("create admin", "admin", err)
}

// CountAdmins returns how many admins exist
func (p *Postgres) CountAdmins(ctx context.Context) (int, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	var count int
	if err := p.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return 0, translate("count admins", "admin", err)
	}
	return count, nil
}

// InsertAuditLog stores one audit record
func (p *Postgres) InsertAuditLog(ctx context.Context, entry *models.AuditLog) error {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	_, err := p.db.NamedExecContext(ctx,
		`INSERT INTO audit_logs (id, user_type, user_id, action, resource, resource_id, details, ip_address, user_agent, status_code, created_at)
		 VALUES (:id, :user_type, :user_id, :action, :resource, :resource_id, :details, :ip_address, :user_agent, :status_code, :created_at)`,
		entry)
	return translate("insert audit log", "audit log", err)
}

// ListAuditLogs returns the most recent audit records first
func (p *Postgres) ListAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	ctx, cancel := p.withTimeout(ctx)
	defer cancel()

	logs := []*models.AuditLog{}
	err := p.db.SelectContext(ctx, &logs,
		`SELECT id, user_type, user_id, action, resource, resource_id, details, ip_address, user_agent, status_code, created_at
		 FROM audit_logs ORDER BY created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, translate("list audit logs", "audit log", err)
	}
	return logs, nil
}
