package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMaskMobile(t *testing.T) {
	assert.Equal(t, "+1555****567", MaskMobile("+15551234567"))
	assert.Equal(t, "****", MaskMobile("+1234"))
}

func TestLogHTTPRequest_LevelByStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := &ZapLogger{Logger: zap.New(core)}

	zl.LogHTTPRequest("GET", "/health", "127.0.0.1", "anonymous", "req-1", http.StatusOK, time.Millisecond, nil)
	zl.LogHTTPRequest("POST", "/api/auth/verify-otp", "127.0.0.1", "anonymous", "req-2", http.StatusUnauthorized, time.Millisecond, nil)
	zl.LogHTTPRequest("GET", "/api/admin/users", "127.0.0.1", "a1", "req-3", http.StatusInternalServerError, time.Millisecond, errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[1].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[2].Level)
	assert.Equal(t, "a1", entries[2].ContextMap()["principal_id"])
}

func TestZapEchoMiddleware_UsesPrincipalID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	zl := &ZapLogger{Logger: zap.New(core)}

	e := echo.New()
	e.Use(ZapEchoMiddleware(zl))
	e.GET("/me", func(c echo.Context) error {
		c.Set(PrincipalIDKey, "user-42")
		return c.NoContent(http.StatusNoContent)
	})

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "user-42", logs.All()[0].ContextMap()["principal_id"])
	assert.EqualValues(t, http.StatusNoContent, logs.All()[0].ContextMap()["status"])
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	appLogger, err := NewAppLogger(Config{Level: "debug", Service: "docshare-audit"})
	require.NoError(t, err)
	var buf bytes.Buffer
	appLogger.SetOutput(&buf)

	r := gin.New()
	r.Use(GinMiddleware(appLogger))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health?x=1", nil))

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Request processed", entry["message"])
	assert.Equal(t, "/health?x=1", entry["path"])
	assert.Equal(t, "docshare-audit", entry["service"])
	assert.Equal(t, logrus.InfoLevel.String(), entry["level"])
}
