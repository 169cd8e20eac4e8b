package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/whisperbox/whisperbox/internal/model"
)

// ErrInvalidToken is returned when a session token fails verification.
var ErrInvalidToken = errors.New("invalid session token")

// SessionCookieName is the cookie that carries the session token for
// browser clients. API clients may send the token as a Bearer header
// instead.
const SessionCookieName = "whisperbox_session"

// SessionClaims is the payload of a signed session token.
// The token is self-contained: protected handlers resolve the caller from
// these fields without a server-side session store.
type SessionClaims struct {
	UserID string `json:"uid"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256-signed session tokens.
type TokenManager struct {
	secret []byte
	maxAge time.Duration
}

// NewTokenManager creates a TokenManager.
// maxAge is the absolute token lifetime (one day in production config).
func NewTokenManager(secret string, maxAge time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		maxAge: maxAge,
	}
}

// MaxAge returns the configured token lifetime.
func (m *TokenManager) MaxAge() time.Duration {
	return m.maxAge
}

// Issue signs a session token for the given user.
// The Google subject id is the token subject.
func (m *TokenManager) Issue(user *model.User) (string, time.Time, error) {
	now := time.Now().UTC()
	exp := now.Add(m.maxAge)

	claims := SessionClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.GoogleID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign session token: %w", err)
	}

	return signed, exp, nil
}

// Verify parses and validates a session token.
func (m *TokenManager) Verify(tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
