// Package store persists admins, users, sessions, documents and audit records.
// Postgres backs production; Memory backs STORE_DRIVER=memory and end-to-end tests.
package store

import (
	"context"
	"time"

	"github.com/piresc/docshare/internal/pkg/models"
)

// AdminStore holds admin accounts
type AdminStore interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetAdminByID(ctx context.Context, id string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, admin *models.Admin) error
	CountAdmins(ctx context.Context) (int, error)
}

// UserStore holds mobile users and their login state
type UserStore interface {
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	ListUsers(ctx context.Context, offset, limit int) ([]*models.User, int, error)
	DeleteUser(ctx context.Context, id string) error
	SetUserVerified(ctx context.Context, id string, verified bool) error
	UpdateUserMobile(ctx context.Context, id, mobile string) (*models.User, error)
	SetTOTPSecret(ctx context.Context, id, secret string) error
	EnableTOTP(ctx context.Context, id string) error
	ResetTOTP(ctx context.Context, id string) error
	IncrementLoginAttempts(ctx context.Context, id string, at time.Time) (int, error)
	ResetLoginAttempts(ctx context.Context, id string) error
	RecordLoginSuccess(ctx context.Context, id string, at time.Time) error
}

// SessionStore holds server-side session records, one table per principal type
type SessionStore interface {
	CreateSession(ctx context.Context, session *models.Session) error
	GetActiveSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) (*models.Session, error)
	DeactivateSession(ctx context.Context, principalType models.PrincipalType, principalID, tokenHash string) error
	DeactivateExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}

// DocumentStore holds shared document links
type DocumentStore interface {
	ListActiveDocuments(ctx context.Context, offset, limit int) ([]*models.Document, int, error)
	GetActiveDocument(ctx context.Context, id string) (*models.Document, error)
	SearchDocuments(ctx context.Context, query string, limit int) ([]*models.Document, error)
	CreateDocument(ctx context.Context, doc *models.Document) error
	UpdateDocument(ctx context.Context, doc *models.Document) error
	SoftDeleteDocument(ctx context.Context, id string) error
}

// AuditStore holds audit records
type AuditStore interface {
	InsertAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error)
}

// Store is everything the API needs from persistence
type Store interface {
	AdminStore
	UserStore
	SessionStore
	DocumentStore
	AuditStore
	Ping(ctx context.Context) error
}
