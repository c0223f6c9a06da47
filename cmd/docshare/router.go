package main

import (
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/health"
	"github.com/piresc/docshare/internal/pkg/lockout"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/middleware"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/otp"
	"github.com/piresc/docshare/internal/pkg/session"
	"github.com/piresc/docshare/internal/pkg/sms"
	"github.com/piresc/docshare/internal/pkg/store"
	admingw "github.com/piresc/docshare/services/admin/gateway"
	adminhandler "github.com/piresc/docshare/services/admin/handler"
	adminhttp "github.com/piresc/docshare/services/admin/handler/http"
	adminuc "github.com/piresc/docshare/services/admin/usecase"
	authhandler "github.com/piresc/docshare/services/auth/handler"
	authhttp "github.com/piresc/docshare/services/auth/handler/http"
	authuc "github.com/piresc/docshare/services/auth/usecase"
	docshandler "github.com/piresc/docshare/services/documents/handler"
	docshttp "github.com/piresc/docshare/services/documents/handler/http"
	docsuc "github.com/piresc/docshare/services/documents/usecase"
)

// Dependencies are the long-lived components the router is built from
type Dependencies struct {
	Store    store.Store
	Redis    *redis.Client // nil when Redis is not configured
	Channel  sms.Channel
	Engine   otp.Engine
	Sessions session.Manager
	Recorder audit.Recorder
	Health   *health.HealthService
	NewRelic *newrelic.Application
	Logger   *logger.ZapLogger
}

// App is the assembled HTTP API
type App struct {
	Echo    *echo.Echo
	adminUC *adminuc.AdminUC
}

// Wait blocks until background work started by requests has finished
func (a *App) Wait() {
	a.adminUC.Wait()
}

// NewApp wires usecases, handlers and middleware into an echo instance
func NewApp(appName string, configs *models.Config, deps Dependencies) *App {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if deps.NewRelic != nil {
		e.Use(nrecho.Middleware(deps.NewRelic))
	}
	middleware.NewMiddleware(middleware.Config{
		Logger:         deps.Logger,
		AllowedOrigins: configs.Server.AllowedOrigins,
	}).Apply(e)

	health.RegisterHealthEndpoints(e, appName, deps.Health)

	// Usecases
	authUC := authuc.NewAuthUC(deps.Store, deps.Engine, deps.Sessions, lockout.NewGuard(configs.Lockout))
	adminUC := adminuc.NewAdminUC(deps.Store, admingw.NewSMSGateway(deps.Channel), deps.Sessions)
	documentsUC := docsuc.NewDocumentsUC(deps.Store)

	// Middleware
	userAuth := middleware.UserAuth(deps.Sessions, deps.Store)
	adminAuth := middleware.AdminAuth(deps.Sessions, deps.Store)
	limits := configs.RateLimit
	generalLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Name:        "general",
		RedisClient: deps.Redis,
		Limit:       limits.GeneralLimit,
		Period:      limits.GeneralPeriod,
	})
	loginLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Name:        "admin_login",
		RedisClient: deps.Redis,
		Limit:       limits.LoginLimit,
		Period:      limits.LoginPeriod,
		Message:     "Too many login attempts, please try again later.",
	})
	otpLimit := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		Name:        "otp",
		RedisClient: deps.Redis,
		Limit:       limits.OTPLimit,
		Period:      limits.OTPPeriod,
		Message:     "Too many OTP requests, please try again later.",
	})

	// Handlers
	authRoutes := authhandler.NewHandler(
		authhttp.NewAuthHandler(authUC),
		authhttp.NewProviderHandler(deps.Channel, deps.Engine.Strategy()),
		userAuth,
		deps.Recorder,
	)
	adminRoutes := adminhandler.NewHandler(adminhttp.NewAdminHandler(adminUC), adminAuth, deps.Recorder)
	documentRoutes := docshandler.NewHandler(docshttp.NewDocumentsHandler(documentsUC), userAuth, deps.Recorder)

	api := e.Group("/api", generalLimit)
	authRoutes.RegisterRoutes(api, otpLimit)
	adminRoutes.RegisterRoutes(api, loginLimit)
	documentRoutes.RegisterRoutes(api)

	return &App{Echo: e, adminUC: adminUC}
}
