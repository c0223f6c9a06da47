package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/piresc/docshare/internal/pkg/config"
	"github.com/piresc/docshare/internal/pkg/database"
	"github.com/piresc/docshare/internal/pkg/logger"
	nrpkg "github.com/piresc/docshare/internal/pkg/newrelic"
	nsqpkg "github.com/piresc/docshare/internal/pkg/nsq"
	"github.com/piresc/docshare/internal/pkg/retry"
	"github.com/piresc/docshare/internal/pkg/store"
	httpHandler "github.com/piresc/docshare/services/audit/handler/http"
	nsqHandler "github.com/piresc/docshare/services/audit/handler/nsq"
	"github.com/piresc/docshare/services/audit/usecase"
	"github.com/sirupsen/logrus"
)

const appName = "docshare-audit"

func main() {
	cfg := config.LoadAuditWorkerConfig("audit", "./config", ".")

	appLogger, err := logger.NewAppLogger(logger.Config{
		Level:    cfg.Logger.Level,
		FilePath: cfg.Logger.FilePath,
		Service:  appName,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer appLogger.Close()

	nrApp := nrpkg.InitNewRelic(cfg.NewRelic)
	if nrApp != nil {
		defer nrApp.Shutdown(10 * time.Second)
	}
	if cfg.NewRelic.ForwardLogs && cfg.NewRelic.LicenseKey != "" {
		hook := appLogger.ForwardToNewRelic(cfg.NewRelic.LicenseKey, "")
		defer hook.Wait()
	}

	appLogger.WithFields(logrus.Fields{
		"topic":   cfg.Topic,
		"channel": cfg.Channel,
	}).Info("Starting audit worker")

	pg, err := database.NewPostgresClient(cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer pg.Close()

	auditUC := usecase.NewAuditUC(store.NewPostgres(pg.GetDB(), cfg.Database.QueryTimeout), retry.DefaultConfig())

	consumer, err := nsqpkg.NewConsumer(nsqpkg.ConsumerConfig{
		Topic:            cfg.Topic,
		Channel:          cfg.Channel,
		NSQDAddress:      cfg.NSQAddress,
		LookupdAddresses: cfg.LookupdAddresses,
		MaxInFlight:      cfg.MaxInFlight,
	}, nsqHandler.NewAuditHandler(auditUC, appLogger.Logger).HandleMessage, appLogger.Logger)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to create NSQ consumer")
	}
	if err := consumer.Connect(); err != nil {
		appLogger.WithError(err).Fatal("Failed to connect NSQ consumer")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	if nrApp != nil {
		router.Use(nrgin.Middleware(nrApp))
	}
	router.Use(logger.GinMiddleware(appLogger))

	httpHandler.NewAuditHandler(auditUC, map[string]httpHandler.Pinger{
		"postgres": pg.Ping,
	}).SetupRoutes(router)

	srv := &http.Server{Addr: cfg.RestPort, Handler: router}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		appLogger.WithField("address", cfg.RestPort).Info("Starting REST server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.WithError(err).Error("REST server failed")
			stop()
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down gracefully...")

	consumer.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Warn("REST server forced to shutdown")
	}
}
