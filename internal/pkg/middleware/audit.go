package middleware

import (
	"context"
	"encoding/json"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/audit"
	"github.com/piresc/docshare/internal/pkg/constants"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
)

const (
	auditTimeout      = 3 * time.Second
	auditPrincipalKey = "audit_principal"
)

// SetAuditPrincipal names the caller on routes without auth middleware, such as login
func SetAuditPrincipal(c echo.Context, p models.Principal) {
	c.Set(auditPrincipalKey, p)
}

// SetAuditDetail attaches extra details to the audit entry of the current request
func SetAuditDetail(c echo.Context, key string, value interface{}) {
	details, _ := c.Get(constants.ContextKeyAuditDetail).(map[string]interface{})
	if details == nil {
		details = make(map[string]interface{})
		c.Set(constants.ContextKeyAuditDetail, details)
	}
	details[key] = value
}

// SetAuditResourceID names the affected resource when it is not a path parameter
func SetAuditResourceID(c echo.Context, id string) {
	c.Set(constants.ContextKeyResourceID, id)
}

// AuditMiddleware records action after the handler has responded.
// Request bodies are never recorded. A recording failure is logged only.
func AuditMiddleware(recorder audit.Recorder, action, resource string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if recorder == nil {
				return err
			}

			entry := buildAuditEntry(c, action, resource, err)
			ctx, cancel := context.WithTimeout(context.WithoutCancel(c.Request().Context()), auditTimeout)
			defer cancel()

			if recErr := recorder.Record(ctx, entry); recErr != nil {
				logger.Warn("Failed to record audit log",
					logger.String("action", action),
					logger.Err(recErr))
			}
			return err
		}
	}
}

func buildAuditEntry(c echo.Context, action, resource string, handlerErr error) *models.AuditLog {
	entry := &models.AuditLog{
		UserType:   "anonymous",
		Action:     action,
		IPAddress:  c.RealIP(),
		UserAgent:  c.Request().UserAgent(),
		StatusCode: c.Response().Status,
		CreatedAt:  time.Now().UTC(),
	}
	p, ok := PrincipalFrom(c)
	if !ok {
		p, ok = c.Get(auditPrincipalKey).(models.Principal)
	}
	if ok {
		id := p.PrincipalID()
		entry.UserType = string(p.PrincipalType())
		entry.UserID = &id
	}
	if resource != "" {
		entry.Resource = &resource
	}
	if id, ok := c.Get(constants.ContextKeyResourceID).(string); ok && id != "" {
		entry.ResourceID = &id
	} else if id := c.Param("id"); id != "" {
		entry.ResourceID = &id
	}

	details := map[string]interface{}{
		"method":  c.Request().Method,
		"url":     c.Request().URL.RequestURI(),
		"success": c.Response().Status < 400 && handlerErr == nil,
	}
	if extra, ok := c.Get(constants.ContextKeyAuditDetail).(map[string]interface{}); ok {
		for k, v := range extra {
			details[k] = v
		}
	}
	if raw, err := json.Marshal(details); err == nil {
		entry.Details = string(raw)
	}
	return entry
}
