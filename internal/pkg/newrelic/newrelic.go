package newrelic

import (
	"context"
	"net/http"

	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
)

// InitNewRelic starts the agent when it is enabled and licensed, otherwise returns nil
func InitNewRelic(cfg models.NewRelicConfig) *newrelic.Application {
	if !cfg.Enabled || cfg.LicenseKey == "" {
		logger.Info("New Relic is disabled or license key not provided")
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.AppName),
		newrelic.ConfigLicense(cfg.LicenseKey),
		newrelic.ConfigDistributedTracerEnabled(true),
		newrelic.ConfigAppLogForwardingEnabled(cfg.ForwardLogs),
	)
	if err != nil {
		logger.Warn("Failed to initialize New Relic, continuing without it", logger.Err(err))
		return nil
	}

	logger.Info("New Relic enabled", logger.String("app_name", cfg.AppName))
	return app
}

// FromContext returns the transaction carried by ctx, or nil
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// StartExternalSegment times an outbound HTTP call. Returns nil outside a transaction.
func StartExternalSegment(ctx context.Context, req *http.Request) *newrelic.ExternalSegment {
	txn := FromContext(ctx)
	if txn == nil {
		return nil
	}
	return newrelic.StartExternalSegment(txn, req)
}

// WithSegment runs fn inside a named segment when a transaction is present
func WithSegment(ctx context.Context, name string, fn func() error) error {
	txn := FromContext(ctx)
	if txn == nil {
		return fn()
	}

	seg := txn.StartSegment(name)
	defer seg.End()

	err := fn()
	if err != nil {
		txn.NoticeError(err)
	}
	return err
}
