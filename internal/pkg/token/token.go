// Package token issues and verifies the signed bearer tokens used by the
// API. Tokens are HS256 JWTs carrying the user id, username, and role; they
// are never stored server-side, so validity is purely a function of the
// signature, the expiry claim, and the clock.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/saiketsystems/user-management-api/internal/core/domain"
)

var (
	ErrExpired          = errors.New("token expired")
	ErrInvalidSignature = errors.New("token signature invalid")
	ErrMalformed        = errors.New("token malformed")
)

// Claims is the decoded claim set of a verified token.
type Claims struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// Config holds the process-wide signing settings, injected at startup.
type Config struct {
	Secret   string
	Lifetime time.Duration
}

// Manager mints and verifies bearer tokens.
type Manager struct {
	secret   []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewManager builds a Manager. A non-positive lifetime defaults to 24h.
func NewManager(cfg Config) *Manager {
	lifetime := cfg.Lifetime
	if lifetime <= 0 {
		lifetime = 24 * time.Hour
	}
	return &Manager{
		secret:   []byte(cfg.Secret),
		lifetime: lifetime,
		now:      time.Now,
	}
}

// WithClock overrides the clock source. Intended for tests.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	m.now = now
	return m
}

// Issue signs a token for the given user, expiring lifetime from now.
func (m *Manager) Issue(user *domain.User) (string, error) {
	now := m.now().UTC()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.lifetime)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token string, returning its claims.
// No revocation list is consulted: verification is a pure function of the
// token, the secret, and the current time.
func (m *Manager) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	}, jwt.WithTimeFunc(m.now))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrInvalidSignature
		default:
			return nil, ErrMalformed
		}
	}
	if !parsed.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
