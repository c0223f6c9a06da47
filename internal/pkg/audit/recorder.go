// Package audit records actions taken through the API.
package audit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/store"
)

//go:generate mockgen -destination=mocks/mock_recorder.go -package=mocks github.com/piresc/docshare/internal/pkg/audit Recorder,Publisher

// Recorder persists or forwards one audit entry
type Recorder interface {
	Record(ctx context.Context, entry *models.AuditLog) error
}

// Publisher sends a message to a topic
type Publisher interface {
	Publish(ctx context.Context, topic string, message interface{}) error
}

func prepare(entry *models.AuditLog) {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}
}

// NSQRecorder publishes entries for the audit worker to persist
type NSQRecorder struct {
	publisher Publisher
	topic     string
}

// NewNSQRecorder creates a recorder publishing to topic, or the default audit topic when empty
func NewNSQRecorder(publisher Publisher, topic string) *NSQRecorder {
	if topic == "" {
		topic = constants.TopicAudit
	}
	return &NSQRecorder{publisher: publisher, topic: topic}
}

func (r *NSQRecorder) Record(ctx context.Context, entry *models.AuditLog) error {
	prepare(entry)
	if err := r.publisher.Publish(ctx, r.topic, entry); err != nil {
		return fmt.Errorf("failed to publish audit log: %w", err)
	}
	return nil
}

// StoreRecorder writes entries straight to the store
type StoreRecorder struct {
	store store.AuditStore
}

func NewStoreRecorder(s store.AuditStore) *StoreRecorder {
	return &StoreRecorder{store: s}
}

func (r *StoreRecorder) Record(ctx context.Context, entry *models.AuditLog) error {
	prepare(entry)
	return r.store.InsertAuditLog(ctx, entry)
}

var (
	_ Recorder = (*NSQRecorder)(nil)
	_ Recorder = (*StoreRecorder)(nil)
)
