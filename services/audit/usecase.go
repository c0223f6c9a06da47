package audit

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/docshare/services/audit AuditUC

// AuditUC persists audit events and serves them back to operators
type AuditUC interface {
	Persist(ctx context.Context, entry *models.AuditLog) error
	Recent(ctx context.Context, limit int) ([]*models.AuditLog, error)
}
