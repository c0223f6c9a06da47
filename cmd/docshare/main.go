package main

import (
	"context"
	"log"
	"time"

	"github.com/piresc/docshare/internal/pkg/config"
	"github.com/piresc/docshare/internal/pkg/database"
	"github.com/piresc/docshare/internal/pkg/health"
	jwtpkg "github.com/piresc/docshare/internal/pkg/jwt"
	"github.com/piresc/docshare/internal/pkg/logger"
	nrpkg "github.com/piresc/docshare/internal/pkg/newrelic"
	"github.com/piresc/docshare/internal/pkg/otp"
	"github.com/piresc/docshare/internal/pkg/server"
	"github.com/piresc/docshare/internal/pkg/session"
)

func main() {
	appName := "docshare-api"
	configPath := config.GetEnv("CONFIG_PATH", "config/docshare.env")
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	if problems := config.Validate(configs); len(problems) > 0 {
		for _, p := range problems {
			logger.Error("Invalid configuration", logger.String("problem", p))
		}
		logger.Fatal("Refusing to start with invalid configuration")
	}

	nrApp := nrpkg.InitNewRelic(configs.NewRelic)
	if nrApp != nil {
		if err := nrApp.WaitForConnection(10 * time.Second); err != nil {
			logger.Warn("New Relic connection timeout", logger.Err(err))
		}
		defer nrApp.Shutdown(10 * time.Second)
	}

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("otp_strategy", string(configs.OTP.Strategy)),
		logger.String("store", configs.Database.Driver))

	ctx := context.Background()
	healthSvc := health.NewHealthService(zapLogger)

	st, closeStore, err := openStore(ctx, configs, healthSvc)
	if err != nil {
		logger.Fatal("Failed to open store", logger.Err(err))
	}

	var redisClient *database.RedisClient
	if configs.Redis.Enabled() {
		redisClient, err = database.NewRedisClient(configs.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		healthSvc.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
	} else {
		logger.Warn("Redis not configured, rate limits are per process")
	}

	channel := newChannel(configs, redisClient)
	engine := otp.NewEngine(configs, channel)

	sessions := session.NewSessionManager(st, jwtpkg.NewSigner(configs.JWT), configs.Session)
	sessions.Start(ctx)

	recorder, stopRecorder, err := newRecorder(ctx, configs, st, healthSvc)
	if err != nil {
		logger.Fatal("Failed to connect to NSQ", logger.Err(err))
	}

	deps := Dependencies{
		Store:    st,
		Channel:  channel,
		Engine:   engine,
		Sessions: sessions,
		Recorder: recorder,
		Health:   healthSvc,
		NewRelic: nrApp,
		Logger:   zapLogger,
	}
	if redisClient != nil {
		deps.Redis = redisClient.GetClient()
	}
	app := NewApp(appName, configs, deps)

	srv := server.NewGracefulServer(app.Echo, zapLogger, configs.Server.Host, configs.Server.Port,
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)
	srv.OnShutdown(func(context.Context) error {
		app.Wait()
		sessions.Stop()
		return nil
	})
	srv.OnShutdown(func(context.Context) error {
		stopRecorder()
		return nil
	})
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	}
	srv.OnShutdown(func(context.Context) error { return closeStore() })

	if err := srv.Start(); err != nil {
		logger.Fatal("Server exited with error", logger.Err(err))
	}
}
