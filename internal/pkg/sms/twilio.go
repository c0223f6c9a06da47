package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/piresc/docshare/internal/pkg/apperror"
	httpclient "github.com/piresc/docshare/internal/pkg/http"
	"github.com/piresc/docshare/internal/pkg/logger"
	"github.com/piresc/docshare/internal/pkg/models"
)

const (
	DefaultVerifyBaseURL = "https://verify.twilio.com/v2"
	DefaultAPIBaseURL    = "https://api.twilio.com/2010-04-01"
)

type twilioResource struct {
	SID     string `json:"sid"`
	Status  string `json:"status"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// TwilioChannel talks to the Verify v2 and Messages APIs
type TwilioChannel struct {
	cfg           models.TwilioConfig
	client        *httpclient.Client
	verifyBaseURL string
	apiBaseURL    string
}

// NewTwilioChannel creates a Twilio channel with its own breaker and timeout
func NewTwilioChannel(cfg models.TwilioConfig) *TwilioChannel {
	return &TwilioChannel{
		cfg:           cfg,
		client:        httpclient.NewClient("twilio", cfg.Timeout),
		verifyBaseURL: DefaultVerifyBaseURL,
		apiBaseURL:    DefaultAPIBaseURL,
	}
}

// WithBaseURLs points the channel at other hosts; used by tests
func (t *TwilioChannel) WithBaseURLs(verifyBaseURL, apiBaseURL string) *TwilioChannel {
	t.verifyBaseURL = verifyBaseURL
	t.apiBaseURL = apiBaseURL
	return t
}

func (t *TwilioChannel) Name() string { return "twilio" }

// Configured reports whether credentials and a Verify service are present
func (t *TwilioChannel) Configured() bool {
	return t.cfg.Configured()
}

// StartVerification asks Verify to text a code to the number
func (t *TwilioChannel) StartVerification(ctx context.Context, to string) (*DeliveryResult, error) {
	endpoint := fmt.Sprintf("%s/Services/%s/Verifications", t.verifyBaseURL, t.cfg.VerifyServiceSID)
	res, status, err := t.post(ctx, endpoint, url.Values{"To": {to}, "Channel": {"sms"}})
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		logger.Warn("Twilio rejected verification request",
			logger.Mobile(to), logger.Int("status", status), logger.String("message", res.Message))
		return nil, apperror.Dependency("failed to start verification", fmt.Errorf("twilio status %d: %s", status, res.Message))
	}

	return &DeliveryResult{Success: true, ProviderID: res.SID, Status: res.Status}, nil
}

// CheckVerification submits a code to Verify. An expired or unknown verification is a denial.
func (t *TwilioChannel) CheckVerification(ctx context.Context, to, code string) (VerificationStatus, error) {
	endpoint := fmt.Sprintf("%s/Services/%s/VerificationCheck", t.verifyBaseURL, t.cfg.VerifyServiceSID)
	res, status, err := t.post(ctx, endpoint, url.Values{"To": {to}, "Code": {code}})
	if err != nil {
		return "", err
	}

	switch {
	case status == http.StatusNotFound, status == http.StatusTooManyRequests:
		return StatusDenied, nil
	case status >= 300:
		return "", apperror.Dependency("failed to check verification", fmt.Errorf("twilio status %d: %s", status, res.Message))
	case res.Status == string(StatusApproved):
		return StatusApproved, nil
	}
	return StatusDenied, nil
}

// Send delivers a plain text message
func (t *TwilioChannel) Send(ctx context.Context, to, body string) (*DeliveryResult, error) {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", t.apiBaseURL, t.cfg.AccountSID)
	res, status, err := t.post(ctx, endpoint, url.Values{"To": {to}, "From": {t.cfg.FromNumber}, "Body": {body}})
	if err != nil {
		return nil, err
	}
	if status >= 300 {
		return nil, apperror.Dependency("failed to send message", fmt.Errorf("twilio status %d: %s", status, res.Message))
	}
	return &DeliveryResult{Success: true, ProviderID: res.SID, Status: res.Status}, nil
}

func (t *TwilioChannel) post(ctx context.Context, endpoint string, form url.Values) (*twilioResource, int, error) {
	if !t.Configured() {
		return nil, 0, apperror.Dependency("sms provider not configured", nil)
	}

	resp, err := t.client.PostForm(ctx, endpoint, form, t.cfg.AccountSID, t.cfg.AuthToken)
	if err != nil {
		return nil, 0, apperror.Dependency("sms provider unavailable", err)
	}
	defer resp.Body.Close()

	var res twilioResource
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, 0, apperror.Dependency("failed to read provider response", err)
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &res); err != nil {
			return nil, 0, apperror.Dependency("failed to decode provider response", err)
		}
	}
	return &res, resp.StatusCode, nil
}

// Client exposes the outbound client for health reporting
func (t *TwilioChannel) Client() *httpclient.Client {
	return t.client
}
