package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/piresc/docshare/internal/pkg/sms"
)

// ProviderHandler exposes the delivery provider's status and callbacks
type ProviderHandler struct {
	channel  sms.Channel
	strategy models.OTPStrategy
}

// NewProviderHandler creates a provider handler for channel
func NewProviderHandler(channel sms.Channel, strategy models.OTPStrategy) *ProviderHandler {
	return &ProviderHandler{channel: channel, strategy: strategy}
}

type providerStatus struct {
	Configured bool               `json:"configured"`
	Channel    string             `json:"channel"`
	Strategy   models.OTPStrategy `json:"strategy"`
}

// Status handles GET /api/twilio/status
func (h *ProviderHandler) Status(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"twilio": providerStatus{
			Configured: h.channel.Configured(),
			Channel:    h.channel.Name(),
			Strategy:   h.strategy,
		},
	})
}

// SMSCallback handles POST /api/twilio/sms-callback, a form-encoded delivery report
func (h *ProviderHandler) SMSCallback(c echo.Context) error {
	status := c.FormValue("MessageStatus")
	fields := []logger.Field{
		logger.String("message_sid", c.FormValue("MessageSid")),
		logger.String("status", status),
		logger.Mobile(c.FormValue("To")),
	}
	if code := c.FormValue("ErrorCode"); code != "" {
		fields = append(fields, logger.String("error_code", code))
	}

	switch status {
	case "failed", "undelivered":
		logger.Warn("SMS delivery failed", fields...)
	default:
		logger.Info("SMS delivery status", fields...)
	}
	return c.NoContent(http.StatusOK)
}
