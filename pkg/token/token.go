package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Validation failures, distinguished so callers can log the cause without
// leaking it to clients.
var (
	ErrExpired           = errors.New("token: expired")
	ErrMalformed         = errors.New("token: malformed")
	ErrSignatureMismatch = errors.New("token: signature mismatch")
)

// Claims is everything a session token carries: identity, role, expiry.
// It is a bearer credential, not a capability token.
type Claims struct {
	UserID string `json:"sub"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// Manager issues and validates HS256-signed session tokens. The secret is
// loaded once at startup and never rotated at runtime.
type Manager struct {
	secret []byte
	ttl    time.Duration
}

func NewManager(secret string, ttl time.Duration) *Manager {
	return &Manager{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Issue produces a signed token embedding the user id, role and expiry.
func (m *Manager) Issue(userID, role string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

// Validate verifies the signature and expiry and returns the embedded claims.
func (m *Manager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrSignatureMismatch
		}
		return m.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, ErrSignatureMismatch):
			return nil, ErrSignatureMismatch
		default:
			return nil, ErrMalformed
		}
	}
	if !token.Valid {
		return nil, ErrMalformed
	}
	return claims, nil
}
