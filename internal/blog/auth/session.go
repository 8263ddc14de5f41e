package auth

import (
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// minSigningKeyBytes is the smallest accepted HMAC key size.
const minSigningKeyBytes = 32

// Session is the server-verifiable proof that a request belongs to the
// authenticated administrator.
type Session struct {
	Username  string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// ParseSigningKey decodes the configured hex session key.
func ParseSigningKey(value string) ([]byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, fmt.Errorf("session key is required")
	}
	key, err := hex.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode session key: %w", err)
	}
	if len(key) < minSigningKeyBytes {
		return nil, fmt.Errorf("session key must be at least %d bytes", minSigningKeyBytes)
	}
	return key, nil
}

// IssueToken signs a compact token for the session.
func (m *Manager) IssueToken(session Session) (string, error) {
	if strings.TrimSpace(session.Username) == "" {
		return "", fmt.Errorf("session username is required")
	}
	claims := jwt.RegisteredClaims{
		Subject:   session.Username,
		IssuedAt:  jwt.NewNumericDate(session.IssuedAt),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return token, nil
}

// VerifyToken validates a session token and returns the session it proves.
//
// Any defect — bad signature, expiry, malformed claims — yields ok=false; the
// caller treats the request as anonymous.
func (m *Manager) VerifyToken(token string) (Session, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Session{}, false
	}

	var claims jwt.RegisteredClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return m.signingKey, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return Session{}, false
	}
	if strings.TrimSpace(claims.Subject) == "" || claims.IssuedAt == nil || claims.ExpiresAt == nil {
		return Session{}, false
	}

	return Session{
		Username:  claims.Subject,
		IssuedAt:  claims.IssuedAt.Time,
		ExpiresAt: claims.ExpiresAt.Time,
	}, true
}
