package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/utils"
)

const defaultBodyLimit = "1M"

// Config holds configuration for the middleware
type Config struct {
	Logger         *logger.ZapLogger
	AllowedOrigins []string
	BodyLimit      string
}

// Middleware combines the standard request middleware applied to every route
type Middleware struct {
	config Config
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(config Config) *Middleware {
	if config.Logger == nil {
		config.Logger = logger.NewNopLogger()
	}
	if config.BodyLimit == "" {
		config.BodyLimit = defaultBodyLimit
	}
	return &Middleware{config: config}
}

// Apply installs the validator, error handler and global middleware on e.
// Order matters: request id first so every later log line carries it,
// recovery before the access log so panics are logged as 500s.
func (m *Middleware) Apply(e *echo.Echo) {
	e.Validator = NewValidator()
	e.HTTPErrorHandler = m.ErrorHandler

	e.Use(
		RequestIDMiddleware(),
		logger.ZapEchoMiddleware(m.config.Logger),
		PanicRecoveryWithZapMiddleware(m.config.Logger),
		SecurityHeadersMiddleware(),
		echomw.BodyLimit(m.config.BodyLimit),
		echomw.CORSWithConfig(m.corsConfig()),
	)
}

func (m *Middleware) corsConfig() echomw.CORSConfig {
	origins := m.config.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return echomw.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderOrigin,
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderAuthorization,
			echo.HeaderXRequestID,
		},
		ExposeHeaders: []string{echo.HeaderXRequestID, "Retry-After", "X-RateLimit-Remaining"},
	}
}

// ErrorHandler renders every error that reaches echo in the standard envelope
func (m *Middleware) ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		msg, ok := httpErr.Message.(string)
		if !ok || httpErr.Code >= http.StatusInternalServerError {
			msg = http.StatusText(httpErr.Code)
		}
		if httpErr.Code == http.StatusNotFound && msg == "Not Found" {
			msg = "Route not found"
		}
		_ = utils.ErrorResponseHandler(c, httpErr.Code, msg)
		return
	}

	if apperror.KindOf(err) == apperror.KindInternal {
		NoticeError(c, err)
	}
	_ = utils.AppErrorResponse(c, err)
}
