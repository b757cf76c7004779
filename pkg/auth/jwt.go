package auth

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/hkdf"

	"github.com/chainsafe/lime-api/pkg/config"
)

const signingKeyInfo = "lime-api/jwt-signing-key/v1"

var (
	// ErrInvalidToken is returned when a token is malformed, badly signed or expired.
	ErrInvalidToken = errors.New("invalid token")
	// ErrAuthFailure is returned when a token cannot be issued.
	ErrAuthFailure = errors.New("failed to issue token")
)

// Claims is the identity carried by a lime token
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenVerifier resolves a token to the subject it was issued for
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenIssuer issues and verifies short-lived HS256 identity tokens
type TokenIssuer struct {
	key []byte
	ttl time.Duration
	now func() time.Time
}

// IssuerOption configures a TokenIssuer
type IssuerOption func(*TokenIssuer)

// WithClock overrides the time source used for issuance and expiry checks
func WithClock(now func() time.Time) IssuerOption {
	return func(i *TokenIssuer) {
		i.now = now
	}
}

// NewTokenIssuer creates an issuer from the auth config. The HMAC key is
// derived from the configured secret with HKDF-SHA256; an empty secret yields
// an issuer whose Issue always fails with ErrAuthFailure.
func NewTokenIssuer(cfg config.AuthConfig, opts ...IssuerOption) (*TokenIssuer, error) {
	issuer := &TokenIssuer{
		ttl: cfg.TokenTTL,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(issuer)
	}

	if cfg.JWTSecret != "" {
		key, err := deriveSigningKey(cfg.JWTSecret)
		if err != nil {
			return nil, err
		}
		issuer.key = key
	}
	return issuer, nil
}

func deriveSigningKey(secret string) ([]byte, error) {
	key := make([]byte, sha256.Size)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(signingKeyInfo)), key); err != nil {
		return nil, fmt.Errorf("failed to derive signing key: %w", err)
	}
	return key, nil
}

// TTL returns how long issued tokens stay valid
func (i *TokenIssuer) TTL() time.Duration {
	return i.ttl
}

// Issue signs a token for subject that expires after the configured TTL
func (i *TokenIssuer) Issue(subject string) (string, error) {
	if len(i.key) == 0 {
		return "", fmt.Errorf("%w: signing key not configured", ErrAuthFailure)
	}

	now := i.now()
	claims := Claims{
		Username: subject,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrAuthFailure, err)
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the embedded subject
func (i *TokenIssuer) Verify(tokenString string) (string, error) {
	if len(i.key) == 0 {
		return "", fmt.Errorf("%w: signing key not configured", ErrInvalidToken)
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return i.key, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Username == "" {
		return "", ErrInvalidToken
	}
	return claims.Username, nil
}
