package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/docshare/internal/pkg/models"
)

// ErrInvalidToken is returned for any token that fails signature, expiry or shape checks
var ErrInvalidToken = errors.New("invalid token")

// Claims carries the session binding on top of the registered claims
type Claims struct {
	PrincipalID   string               `json:"principal_id"`
	SessionID     string               `json:"session_id"`
	PrincipalType models.PrincipalType `json:"principal_type"`
	jwt.RegisteredClaims
}

// Signer issues and parses HS256 bearer tokens with a process-wide key
type Signer struct {
	secret []byte
	issuer string
}

// NewSigner creates a token signer from the JWT config
func NewSigner(cfg models.JWTConfig) *Signer {
	return &Signer{secret: []byte(cfg.Secret), issuer: cfg.Issuer}
}

// GenerateToken signs a token for a session
func (s *Signer) GenerateToken(principalID, sessionID string, principalType models.PrincipalType, issuedAt, expiresAt time.Time) (string, error) {
	claims := Claims{
		PrincipalID:   principalID,
		SessionID:     sessionID,
		PrincipalType: principalType,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   principalID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken verifies signature, algorithm and expiry, then checks the custom claims are present
func (s *Signer) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.PrincipalID == "" || claims.SessionID == "" || !claims.PrincipalType.Valid() {
		return nil, fmt.Errorf("%w: missing session claims", ErrInvalidToken)
	}
	if claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return nil, fmt.Errorf("%w: missing time claims", ErrInvalidToken)
	}
	if s.issuer != "" && !claims.VerifyIssuer(s.issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrInvalidToken)
	}

	return &models.SessionClaims{
		PrincipalID:   claims.PrincipalID,
		SessionID:     claims.SessionID,
		PrincipalType: claims.PrincipalType,
		IssuedAt:      claims.IssuedAt.Time,
		ExpiresAt:     claims.ExpiresAt.Time,
	}, nil
}
