package utils

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSuccessResponse(t *testing.T) {
	c, rec := newTestContext()

	err := SuccessResponse(c, http.StatusCreated, "Document created", map[string]interface{}{"id": "d1"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var response Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.True(t, response.Success)
	assert.Equal(t, "Document created", response.Message)
	assert.Equal(t, map[string]interface{}{"id": "d1"}, response.Data)
}

func TestErrorHelpers_DefaultMessages(t *testing.T) {
	tests := []struct {
		name     string
		call     func(c echo.Context) error
		status   int
		expected string
	}{
		{"unauthorized", func(c echo.Context) error { return UnauthorizedResponse(c, "") }, http.StatusUnauthorized, "Unauthorized"},
		{"not found", func(c echo.Context) error { return NotFoundResponse(c, "") }, http.StatusNotFound, "Resource not found"},
		{"internal", func(c echo.Context) error { return InternalServerErrorResponse(c, "") }, http.StatusInternalServerError, "Internal server error"},
		{"unavailable", func(c echo.Context) error { return ServiceUnavailableResponse(c, "") }, http.StatusServiceUnavailable, "Service unavailable"},
		{"bad request", func(c echo.Context) error { return BadRequestResponse(c, "Invalid input") }, http.StatusBadRequest, "Invalid input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, tt.call(c))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.status, rec.Code)
			assert.False(t, response.Success)
			assert.Equal(t, tt.expected, response.Error)
			assert.Equal(t, tt.status, response.Code)
		})
	}
}

func TestAppErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		status     int
		message    string
		retryAfter string
	}{
		{"not found", apperror.New(apperror.KindNotFound, "Invalid mobile number or OTP"), http.StatusNotFound, "Invalid mobile number or OTP", ""},
		{"bad code", apperror.New(apperror.KindInvalidCredential, "Invalid mobile number or OTP"), http.StatusUnauthorized, "Invalid mobile number or OTP", ""},
		{"locked", apperror.Locked("Account temporarily locked", 90*time.Second+300*time.Millisecond), http.StatusTooManyRequests, "Account temporarily locked", "91"},
		{"dependency", apperror.Dependency("failed to query users", errors.New("i/o timeout")), http.StatusInternalServerError, "Internal server error", ""},
		{"plain error", errors.New("nil pointer"), http.StatusInternalServerError, "Internal server error", ""},
		{"conflict", apperror.New(apperror.KindConflict, "User already exists"), http.StatusConflict, "User already exists", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()
			require.NoError(t, AppErrorResponse(c, tt.err))

			var response map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, false, response["success"])
			assert.Equal(t, tt.message, response["error"])
			assert.Equal(t, tt.retryAfter, rec.Header().Get("Retry-After"))
		})
	}
}
