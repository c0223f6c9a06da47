package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTwilioConfig() models.TwilioConfig {
	return models.TwilioConfig{
		AccountSID:       "AC123",
		AuthToken:        "secret",
		VerifyServiceSID: "VA456",
		FromNumber:       "+15550000000",
		Timeout:          time.Second,
	}
}

func newTwilioServer(t *testing.T, handler http.HandlerFunc) (*TwilioChannel, func()) {
	server := httptest.NewServer(handler)
	ch := NewTwilioChannel(testTwilioConfig()).WithBaseURLs(server.URL+"/v2", server.URL+"/2010-04-01")
	return ch, server.Close
}

func TestTwilioChannel_StartVerification(t *testing.T) {
	ch, done := newTwilioServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/Services/VA456/Verifications", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15551234567", r.PostForm.Get("To"))
		assert.Equal(t, "sms", r.PostForm.Get("Channel"))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"VE789","status":"pending"}`))
	})
	defer done()

	res, err := ch.StartVerification(context.Background(), "+15551234567")

	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.Equal(t, "VE789", res.ProviderID)
}

func TestTwilioChannel_CheckVerification(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    VerificationStatus
		wantErr apperror.Kind
	}{
		{"approved", http.StatusOK, `{"status":"approved"}`, StatusApproved, -1},
		{"pending means wrong code", http.StatusOK, `{"status":"pending"}`, StatusDenied, -1},
		{"expired verification", http.StatusNotFound, `{"code":20404,"message":"not found"}`, StatusDenied, -1},
		{"max attempts", http.StatusTooManyRequests, `{"code":60202,"message":"max check attempts"}`, StatusDenied, -1},
		{"bad request", http.StatusBadRequest, `{"code":60200,"message":"invalid parameter"}`, "", apperror.KindDependencyUnavailable},
		{"provider outage", http.StatusServiceUnavailable, ``, "", apperror.KindDependencyUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, done := newTwilioServer(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/v2/Services/VA456/VerificationCheck", r.URL.Path)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			})
			defer done()

			got, err := ch.CheckVerification(context.Background(), "+15551234567", "123456")

			if tt.wantErr >= 0 {
				assert.True(t, apperror.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTwilioChannel_Send(t *testing.T) {
	ch, done := newTwilioServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550000000", r.PostForm.Get("From"))
		assert.Contains(t, r.PostForm.Get("Body"), "DocShare")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1","status":"queued"}`))
	})
	defer done()

	res, err := ch.Send(context.Background(), "+15551234567", "You now have access to DocShare")

	require.NoError(t, err)
	assert.Equal(t, "SM1", res.ProviderID)
	assert.Equal(t, "queued", res.Status)
}

func TestTwilioChannel_NotConfigured(t *testing.T) {
	ch := NewTwilioChannel(models.TwilioConfig{})

	assert.False(t, ch.Configured())
	_, err := ch.StartVerification(context.Background(), "+15551234567")
	assert.True(t, apperror.Is(err, apperror.KindDependencyUnavailable))
}
