package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/services/audit/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouter(h *AuditHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h.SetupRoutes(router)
	return router
}

func serve(router *gin.Engine, target string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var body map[string]interface{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	ok := func(context.Context) error { return nil }
	down := func(context.Context) error { return errors.New("connection refused") }

	rec, body := serve(setupRouter(NewAuditHandler(mocks.NewMockAuditUC(ctrl), map[string]Pinger{"postgres": ok})), "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", body["status"])

	rec, body = serve(setupRouter(NewAuditHandler(mocks.NewMockAuditUC(ctrl), map[string]Pinger{"postgres": ok, "nsq": down})), "/health")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	deps := body["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["nsq"].(map[string]interface{})["status"])
	assert.Equal(t, "healthy", deps["postgres"].(map[string]interface{})["status"])
}

func TestRecentLogs(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockAuditUC(ctrl)
	router := setupRouter(NewAuditHandler(uc, nil))

	uc.EXPECT().Recent(gomock.Any(), 5).Return([]*models.AuditLog{{ID: "e2", Action: "USER_LOGOUT"}, {ID: "e1", Action: "USER_LOGIN"}}, nil)
	rec, body := serve(router, "/audit/logs?limit=5")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(2), body["count"])
	first := body["logs"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, "e2", first["id"])

	uc.EXPECT().Recent(gomock.Any(), 0).Return([]*models.AuditLog{}, nil)
	rec, _ = serve(router, "/audit/logs")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = serve(router, "/audit/logs?limit=abc")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	uc.EXPECT().Recent(gomock.Any(), 10).Return(nil, errors.New("db down"))
	rec, body = serve(router, "/audit/logs?limit=10")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to load audit logs", body["error"])
}
