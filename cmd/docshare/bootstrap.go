package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/database"
	"github.com/piresc/docshare/internal/pkg/health"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/nsq"
	"github.com/piresc/docshare/internal/pkg/sms"
	"github.com/piresc/docshare/internal/pkg/store"
	"golang.org/x/crypto/bcrypt"
)

// openStore returns the configured store, migrated and seeded.
// The returned close func releases the connection pool.
func openStore(ctx context.Context, configs *models.Config, healthSvc *health.HealthService) (store.Store, func() error, error) {
	if configs.Database.Driver == "memory" {
		mem := store.NewMemory()
		if err := seedAdmin(ctx, mem, configs.Admin); err != nil {
			return nil, nil, err
		}
		logger.Warn("Using in-memory store, data is lost on restart")
		return mem, func() error { return nil }, nil
	}

	pg, err := database.NewPostgresClient(configs.Database)
	if err != nil {
		return nil, nil, err
	}
	if err := database.Migrate(ctx, pg.GetDB()); err != nil {
		pg.Close()
		return nil, nil, err
	}
	if err := database.SeedAdmin(ctx, pg.GetDB(), configs.Admin.Username, configs.Admin.Password); err != nil {
		pg.Close()
		return nil, nil, err
	}
	healthSvc.AddChecker("postgres", health.NewPostgresHealthChecker(pg))
	return store.NewPostgres(pg.GetDB(), configs.Database.QueryTimeout), pg.Close, nil
}

// seedAdmin creates the default admin in stores that have no schema bootstrap
func seedAdmin(ctx context.Context, admins store.AdminStore, seed models.AdminSeedConfig) error {
	count, err := admins.CountAdmins(ctx)
	if err != nil {
		return fmt.Errorf("failed to count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), database.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	return admins.CreateAdmin(ctx, &models.Admin{
		ID:           uuid.New().String(),
		Username:     seed.Username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	})
}

// newChannel picks Twilio when credentials are present, then Redis-backed local codes
func newChannel(configs *models.Config, redisClient *database.RedisClient) sms.Channel {
	switch {
	case configs.Twilio.Configured():
		return sms.NewTwilioChannel(configs.Twilio)
	case redisClient != nil:
		return sms.NewLocalChannel(redisClient.GetClient(), configs.OTP.CodeTTL, configs.App.Debug)
	}
	return sms.Disabled{}
}

// newRecorder publishes audit events to NSQ when an address is configured,
// otherwise writes them straight to the store
func newRecorder(ctx context.Context, configs *models.Config, st store.AuditStore, healthSvc *health.HealthService) (audit.Recorder, func(), error) {
	if configs.NSQ.Address == "" {
		return audit.NewStoreRecorder(st), func() {}, nil
	}

	producer, err := nsq.NewProducer(ctx, configs.NSQ.Address)
	if err != nil {
		return nil, nil, err
	}
	healthSvc.AddChecker("nsq", health.CheckerFunc(func(context.Context) error { return producer.Ping() }))
	return audit.NewNSQRecorder(producer, configs.NSQ.AuditTopic), producer.Stop, nil
}
