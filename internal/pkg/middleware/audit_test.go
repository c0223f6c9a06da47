package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/audit/mocks"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditMiddleware_RecordsAuthenticatedAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)

	var got *models.AuditLog
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, entry *models.AuditLog) error {
			got = entry
			return nil
		})

	e := echo.New()
	e.DELETE("/api/admin/documents/:id", func(c echo.Context) error {
		c.Set(constants.ContextKeyPrincipal, &models.AdminPrincipal{ID: "a1", Username: "admin"})
		SetAuditDetail(c, "title", "Handbook")
		return c.JSON(http.StatusOK, map[string]bool{"success": true})
	}, AuditMiddleware(recorder, "DELETE_DOCUMENT", "document"))

	req := httptest.NewRequest(http.MethodDelete, "/api/admin/documents/d1?force=1", strings.NewReader(`{"secret":"x"}`))
	req.Header.Set("User-Agent", "test-agent")
	req.Header.Set(echo.HeaderXRealIP, "192.0.2.1")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "admin", got.UserType)
	require.NotNil(t, got.UserID)
	assert.Equal(t, "a1", *got.UserID)
	assert.Equal(t, "DELETE_DOCUMENT", got.Action)
	assert.Equal(t, "document", *got.Resource)
	assert.Equal(t, "d1", *got.ResourceID)
	assert.Equal(t, "192.0.2.1", got.IPAddress)
	assert.Equal(t, "test-agent", got.UserAgent)
	assert.Equal(t, http.StatusOK, got.StatusCode)

	var details map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(got.Details), &details))
	assert.Equal(t, "DELETE", details["method"])
	assert.Equal(t, "/api/admin/documents/d1?force=1", details["url"])
	assert.Equal(t, true, details["success"])
	assert.Equal(t, "Handbook", details["title"])
	assert.NotContains(t, got.Details, "secret")
}

func TestAuditMiddleware_LoginUsesAuditPrincipal(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)

	var got *models.AuditLog
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, entry *models.AuditLog) error {
			got = entry
			return nil
		})

	e := echo.New()
	e.POST("/api/auth/verify-otp", func(c echo.Context) error {
		SetAuditPrincipal(c, &models.UserPrincipal{ID: "u1", IsVerified: true})
		SetAuditResourceID(c, "u1")
		return c.NoContent(http.StatusOK)
	}, AuditMiddleware(recorder, "USER_LOGIN", "user"))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/auth/verify-otp", nil))

	require.NotNil(t, got)
	assert.Equal(t, "user", got.UserType)
	assert.Equal(t, "u1", *got.UserID)
	assert.Equal(t, "u1", *got.ResourceID)
}

func TestAuditMiddleware_AnonymousFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	recorder := mocks.NewMockRecorder(ctrl)

	var got *models.AuditLog
	recorder.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, entry *models.AuditLog) error {
			got = entry
			return errors.New("nsq down")
		})

	e := echo.New()
	e.POST("/api/admin/login", func(c echo.Context) error {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid credentials"})
	}, AuditMiddleware(recorder, "ADMIN_LOGIN", ""))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/admin/login", nil))

	// a recording failure never changes the response
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "anonymous", got.UserType)
	assert.Nil(t, got.UserID)
	assert.Nil(t, got.Resource)
	assert.Contains(t, got.Details, `"success":false`)
}

func TestAuditMiddleware_NilRecorder(t *testing.T) {
	e := echo.New()
	e.GET("/x", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }, AuditMiddleware(nil, "X", ""))

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
