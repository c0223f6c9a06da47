package otp

import (
	"bytes"
	"context"
	"encoding/base32"
	"encoding/base64"
	"fmt"
	"image/png"
	"strings"
	"time"

	"github.com/piresc/docshare/internal/pkg/apperror"
	"github.com/piresc/docshare/internal/pkg/models"
	pqotp "github.com/pquerna/otp"
	"github.com/pquerna/otp/totp"
)

const (
	secretSize = 20
	period     = 30
	qrSize     = 200
)

// ErrNoSecret is returned when a code is checked before one was requested
var ErrNoSecret = apperror.New(apperror.KindInvalidInput, "Please request an OTP first")

// Enrollment is the material an authenticator app needs to register a secret
type Enrollment struct {
	Secret     string
	OTPAuthURL string
	QRCode     string
}

// TOTPEngine derives codes from a secret stored on the user
type TOTPEngine struct {
	issuer string
	skew   uint
	now    func() time.Time
}

// NewTOTPEngine creates a 6-digit, 30-second, SHA1 engine
func NewTOTPEngine(cfg models.OTPConfig) *TOTPEngine {
	issuer := cfg.Issuer
	if issuer == "" {
		issuer = "DocShare"
	}
	return &TOTPEngine{issuer: issuer, skew: cfg.Skew, now: time.Now}
}

// WithClock replaces the time source
func (e *TOTPEngine) WithClock(now func() time.Time) *TOTPEngine {
	e.now = now
	return e
}

func (e *TOTPEngine) Strategy() models.OTPStrategy { return models.StrategyTOTP }

func (e *TOTPEngine) validateOpts() totp.ValidateOpts {
	return totp.ValidateOpts{
		Period:    period,
		Skew:      e.skew,
		Digits:    pqotp.DigitsSix,
		Algorithm: pqotp.AlgorithmSHA1,
	}
}

func (e *TOTPEngine) generate(account string, raw []byte) (*pqotp.Key, error) {
	return totp.Generate(totp.GenerateOpts{
		Issuer:      e.issuer,
		AccountName: account,
		Period:      period,
		SecretSize:  secretSize,
		Secret:      raw,
		Digits:      pqotp.DigitsSix,
		Algorithm:   pqotp.AlgorithmSHA1,
	})
}

// GenerateSecret returns a fresh random base32 secret
func (e *TOTPEngine) GenerateSecret(account string) (string, error) {
	key, err := e.generate(account, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate secret: %w", err)
	}
	return key.Secret(), nil
}

// CurrentCode returns the code for secret at t
func (e *TOTPEngine) CurrentCode(secret string, t time.Time) (string, error) {
	return totp.GenerateCodeCustom(secret, t, e.validateOpts())
}

// Verify checks code against secret at the current time, allowing the configured skew
func (e *TOTPEngine) Verify(secret, code string) bool {
	ok, err := totp.ValidateCustom(code, secret, e.now().UTC(), e.validateOpts())
	return err == nil && ok
}

// Enrollment renders the otpauth URL and QR code for an existing secret
func (e *TOTPEngine) Enrollment(secret, account string) (*Enrollment, error) {
	raw, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.ToUpper(strings.TrimRight(secret, "=")))
	if err != nil {
		return nil, fmt.Errorf("failed to decode secret: %w", err)
	}

	key, err := e.generate(account, raw)
	if err != nil {
		return nil, fmt.Errorf("failed to build key: %w", err)
	}

	img, err := key.Image(qrSize, qrSize)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}

	return &Enrollment{
		Secret:     key.Secret(),
		OTPAuthURL: key.URL(),
		QRCode:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	}, nil
}

// Request returns enrollment material. Once a secret is enabled nothing is re-issued.
func (e *TOTPEngine) Request(ctx context.Context, user *models.User) (*Challenge, error) {
	if user.TOTPEnabled && user.HasSecret() {
		return &Challenge{Method: MethodTOTP, AlreadyEnabled: true}, nil
	}

	secret := user.Secret()
	newSecret := false
	if secret == "" {
		var err error
		if secret, err = e.GenerateSecret(user.MobileNumber); err != nil {
			return nil, apperror.Wrap(apperror.KindInternal, "failed to issue secret", err)
		}
		newSecret = true
	}

	enrollment, err := e.Enrollment(secret, user.MobileNumber)
	if err != nil {
		return nil, apperror.Wrap(apperror.KindInternal, "failed to build enrollment", err)
	}

	return &Challenge{
		Method:     MethodTOTP,
		NewSecret:  newSecret,
		Secret:     enrollment.Secret,
		OTPAuthURL: enrollment.OTPAuthURL,
		QRCode:     enrollment.QRCode,
	}, nil
}

// Check verifies code against the user's stored secret
func (e *TOTPEngine) Check(ctx context.Context, user *models.User, code string) (bool, error) {
	if !user.HasSecret() {
		return false, ErrNoSecret
	}
	return e.Verify(user.Secret(), code), nil
}
