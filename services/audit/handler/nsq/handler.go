package nsq

import (
	"context"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	nsqpkg "github.com/piresc/docshare/internal/pkg/nsq"
	"github.com/piresc/docshare/services/audit"
	"github.com/sirupsen/logrus"
)

// AuditHandler consumes audit events published by the API
type AuditHandler struct {
	auditUC audit.AuditUC
	log     *logrus.Entry
}

// NewAuditHandler creates the NSQ message handler
func NewAuditHandler(auditUC audit.AuditUC, log *logrus.Logger) *AuditHandler {
	return &AuditHandler{
		auditUC: auditUC,
		log:     log.WithField("component", "audit_consumer"),
	}
}

// HandleMessage satisfies nsq.MessageHandler. Undecodable or invalid events are
// dropped; storage failures are returned so NSQ requeues the message.
func (h *AuditHandler) HandleMessage(ctx context.Context, body []byte) error {
	var entry models.AuditLog
	if err := nsqpkg.UnmarshalMessage(body, &entry); err != nil {
		h.log.WithError(err).Error("Dropping malformed audit event")
		return nil
	}

	if err := h.auditUC.Persist(ctx, &entry); err != nil {
		if apperror.Is(err, apperror.KindInvalidInput) {
			h.log.WithError(err).WithField("id", entry.ID).Warn("Dropping invalid audit event")
			return nil
		}
		return err
	}

	h.log.WithFields(logrus.Fields{
		"id":     entry.ID,
		"action": entry.Action,
	}).Debug("Audit event stored")
	return nil
}
