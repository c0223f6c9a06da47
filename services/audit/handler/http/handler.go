package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/piresc/docshare/services/audit"
)

// Pinger reports whether a dependency is reachable
type Pinger func(ctx context.Context) error

// AuditHandler serves the worker's operational endpoints
type AuditHandler struct {
	auditUC audit.AuditUC
	checks  map[string]Pinger
}

// NewAuditHandler creates the gin handler; checks feed /health
func NewAuditHandler(auditUC audit.AuditUC, checks map[string]Pinger) *AuditHandler {
	return &AuditHandler{auditUC: auditUC, checks: checks}
}

// SetupRoutes mounts the handler on router
func (h *AuditHandler) SetupRoutes(router *gin.Engine) {
	router.GET("/health", h.HandleHealth)

	logs := router.Group("/audit")
	{
		logs.GET("/logs", h.HandleRecentLogs)
	}
}

// HandleHealth handles GET /health
func (h *AuditHandler) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	status := http.StatusOK
	deps := gin.H{}
	for name, ping := range h.checks {
		if err := ping(ctx); err != nil {
			status = http.StatusServiceUnavailable
			deps[name] = gin.H{"status": "unhealthy", "error": err.Error()}
			continue
		}
		deps[name] = gin.H{"status": "healthy"}
	}

	overall := "ok"
	if status != http.StatusOK {
		overall = "unhealthy"
	}
	c.JSON(status, gin.H{"status": overall, "dependencies": deps})
}

// HandleRecentLogs handles GET /audit/logs?limit=
func (h *AuditHandler) HandleRecentLogs(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	logs, err := h.auditUC.Recent(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to load audit logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(logs), "logs": logs})
}
