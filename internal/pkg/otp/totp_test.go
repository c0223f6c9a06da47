package otp

import (
	"bytes"
	"context"
	"encoding/base64"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "JBSWY3DPEHPK3PXPJBSWY3DPEHPK3PXP"

// middle of a 30s step
var fixedNow = time.Unix(1700000000-1700000000%30+15, 0).UTC()

func newTestEngine() *TOTPEngine {
	return NewTOTPEngine(models.OTPConfig{Issuer: "DocShare", Skew: 1}).WithClock(func() time.Time { return fixedNow })
}

func TestTOTPEngine_GenerateSecret(t *testing.T) {
	e := newTestEngine()

	a, err := e.GenerateSecret("+15551234567")
	require.NoError(t, err)
	b, err := e.GenerateSecret("+15551234567")
	require.NoError(t, err)

	assert.Len(t, a, 32)
	assert.Regexp(t, `^[A-Z2-7]+$`, a)
	assert.NotEqual(t, a, b)
}

func TestTOTPEngine_VerifyWindow(t *testing.T) {
	e := newTestEngine()

	tests := []struct {
		name   string
		offset time.Duration
		want   bool
	}{
		{"current step", 0, true},
		{"previous step", -30 * time.Second, true},
		{"next step", 30 * time.Second, true},
		{"two steps behind", -60 * time.Second, false},
		{"three steps ahead", 90 * time.Second, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, err := e.CurrentCode(testSecret, fixedNow.Add(tt.offset))
			require.NoError(t, err)
			assert.Equal(t, tt.want, e.Verify(testSecret, code))
		})
	}
}

func TestTOTPEngine_VerifyRejectsMalformed(t *testing.T) {
	e := newTestEngine()

	assert.False(t, e.Verify(testSecret, ""))
	assert.False(t, e.Verify(testSecret, "12345"))
	assert.False(t, e.Verify(testSecret, "abcdef"))
	assert.False(t, e.Verify("not-base32!", "123456"))
}

func TestTOTPEngine_ExactStepOnly(t *testing.T) {
	e := NewTOTPEngine(models.OTPConfig{Skew: 0}).WithClock(func() time.Time { return fixedNow })

	code, err := e.CurrentCode(testSecret, fixedNow.Add(-30*time.Second))
	require.NoError(t, err)
	assert.False(t, e.Verify(testSecret, code))
}

func TestTOTPEngine_Enrollment(t *testing.T) {
	e := newTestEngine()

	enr, err := e.Enrollment(testSecret, "+15551234567")
	require.NoError(t, err)

	assert.Equal(t, testSecret, enr.Secret)
	assert.True(t, strings.HasPrefix(enr.OTPAuthURL, "otpauth://totp/DocShare:"))
	assert.Contains(t, enr.OTPAuthURL, "secret="+testSecret)

	require.True(t, strings.HasPrefix(enr.QRCode, "data:image/png;base64,"))
	raw, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(enr.QRCode, "data:image/png;base64,"))
	require.NoError(t, err)
	img, err := png.Decode(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, qrSize, img.Bounds().Dx())
}

func TestTOTPEngine_Request(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	secret := testSecret

	t.Run("no secret issues a new one", func(t *testing.T) {
		ch, err := e.Request(ctx, &models.User{MobileNumber: "+15551234567"})
		require.NoError(t, err)
		assert.True(t, ch.NewSecret)
		assert.NotEmpty(t, ch.Secret)
		assert.NotEmpty(t, ch.QRCode)
		assert.Equal(t, MethodTOTP, ch.Method)
	})

	t.Run("unconfirmed secret is re-issued", func(t *testing.T) {
		ch, err := e.Request(ctx, &models.User{MobileNumber: "+15551234567", TOTPSecret: &secret})
		require.NoError(t, err)
		assert.False(t, ch.NewSecret)
		assert.Equal(t, testSecret, ch.Secret)
	})

	t.Run("enabled secret short-circuits", func(t *testing.T) {
		ch, err := e.Request(ctx, &models.User{MobileNumber: "+15551234567", TOTPSecret: &secret, TOTPEnabled: true})
		require.NoError(t, err)
		assert.True(t, ch.AlreadyEnabled)
		assert.Empty(t, ch.Secret)
		assert.Empty(t, ch.QRCode)
		assert.Empty(t, ch.Public().OTPAuthURL)
	})
}

func TestTOTPEngine_Check(t *testing.T) {
	e := newTestEngine()
	ctx := context.Background()
	secret := testSecret
	user := &models.User{MobileNumber: "+15551234567", TOTPSecret: &secret}

	code, err := e.CurrentCode(testSecret, fixedNow)
	require.NoError(t, err)

	ok, err := e.Check(ctx, user, code)
	require.NoError(t, err)
	assert.True(t, ok)

	wrong := "000000"
	if code == wrong {
		wrong = "111111"
	}
	ok, err = e.Check(ctx, user, wrong)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = e.Check(ctx, &models.User{MobileNumber: "+15551234567"}, code)
	assert.True(t, apperror.Is(err, apperror.KindInvalidInput))
}
