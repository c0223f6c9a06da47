package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/retry"
	"github.com/piresc/docshare/services/audit"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// AuditUC implements audit.AuditUC
type AuditUC struct {
	repo    audit.AuditRepo
	retrier *retry.Retrier
}

// NewAuditUC creates the worker usecase. Inserts are retried with cfg;
// only dependency failures are retried.
func NewAuditUC(repo audit.AuditRepo, cfg retry.Config) *AuditUC {
	cfg.Retryable = func(err error) bool {
		return apperror.Is(err, apperror.KindDependencyUnavailable)
	}
	return &AuditUC{repo: repo, retrier: retry.New(cfg)}
}

// Persist stores one event, filling the id and timestamp when the producer left them out
func (u *AuditUC) Persist(ctx context.Context, entry *models.AuditLog) error {
	if entry == nil || entry.Action == "" {
		return apperror.New(apperror.KindInvalidInput, "audit entry without action")
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
	if entry.UserType == "" {
		entry.UserType = "anonymous"
	}

	err := u.retrier.Execute(ctx, "insert audit log", func(ctx context.Context) error {
		return u.repo.InsertAuditLog(ctx, entry)
	})
	// a redelivered event is already stored
	if apperror.Is(err, apperror.KindConflict) {
		return nil
	}
	return err
}

// Recent returns the newest entries first, capped at MaxListLimit
func (u *AuditUC) Recent(ctx context.Context, limit int) ([]*models.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	logs, err := u.repo.ListAuditLogs(ctx, limit)
	if err != nil {
		return nil, err
	}
	if logs == nil {
		logs = []*models.AuditLog{}
	}
	return logs, nil
}

var _ audit.AuditUC = (*AuditUC)(nil)
