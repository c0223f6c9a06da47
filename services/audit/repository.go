package audit

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/docshare/services/audit AuditRepo

// AuditRepo is the audit_logs table
type AuditRepo interface {
	InsertAuditLog(ctx context.Context, entry *models.AuditLog) error
	ListAuditLogs(ctx context.Context, limit int) ([]*models.AuditLog, error)
}
