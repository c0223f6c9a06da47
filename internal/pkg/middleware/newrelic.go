package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/piresc/docshare/internal/pkg/models"
)

// AddAttribute adds a custom attribute to the current transaction
func AddAttribute(c echo.Context, key string, value interface{}) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.AddAttribute(key, value)
	}
}

// NoticeError reports an error to New Relic
func NoticeError(c echo.Context, err error) {
	if txn := newrelic.FromContext(c.Request().Context()); txn != nil {
		txn.NoticeError(err)
	}
}

// SetPrincipal tags the transaction with the authenticated caller
func SetPrincipal(c echo.Context, p models.Principal) {
	AddAttribute(c, "principal.id", p.PrincipalID())
	AddAttribute(c, "principal.type", string(p.PrincipalType()))
}
