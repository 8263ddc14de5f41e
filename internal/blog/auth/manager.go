package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lmoreira/quill/internal/blog/storage"
	"github.com/lmoreira/quill/internal/blog/user"
	"github.com/lmoreira/quill/internal/platform/apperrors"
	"github.com/lmoreira/quill/internal/platform/timeouts"
)

// invalidCredentialsMessage is shared by unknown-user and wrong-password
// failures so responses never reveal which one occurred.
const invalidCredentialsMessage = "Invalid username or password."

// dummyDigest is compared against when the username is unknown, keeping the
// work factor of the two failure paths indistinguishable.
const dummyDigest = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// ErrInvalidCredentials reports a failed login attempt.
func ErrInvalidCredentials() *apperrors.Error {
	return apperrors.E(apperrors.KindUnauthorized, invalidCredentialsMessage)
}

// UserStore is the persistence surface the auth manager depends on.
type UserStore interface {
	// GetUserByUsername returns the account for username, or storage.ErrNotFound.
	GetUserByUsername(ctx context.Context, username string) (user.User, error)
	// InsertUser persists a new account and returns it with its assigned id.
	InsertUser(ctx context.Context, u user.User) (user.User, error)
}

// Manager authenticates the administrator and issues session tokens.
type Manager struct {
	users      UserStore
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewManager builds an auth manager. The signing key must be at least 32
// bytes; use ParseSigningKey to decode the configured hex value.
func NewManager(users UserStore, signingKey []byte) (*Manager, error) {
	if users == nil {
		return nil, errors.New("user store is required")
	}
	if len(signingKey) < minSigningKeyBytes {
		return nil, fmt.Errorf("signing key must be at least %d bytes", minSigningKeyBytes)
	}
	return &Manager{
		users:      users,
		signingKey: signingKey,
		ttl:        timeouts.SessionTTL,
		now:        time.Now,
	}, nil
}

// WithClock overrides the manager clock. Test seam.
func (m *Manager) WithClock(now func() time.Time) *Manager {
	if now != nil {
		m.now = now
	}
	return m
}

// Authenticate verifies a username/password pair and returns a session.
//
// The failure error is identical for an unknown user and a wrong password,
// and both paths run a bcrypt comparison.
func (m *Manager) Authenticate(ctx context.Context, username, password string) (Session, error) {
	username = strings.TrimSpace(username)

	u, err := m.users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			checkPassword(dummyDigest, password)
			return Session{}, ErrInvalidCredentials()
		}
		return Session{}, apperrors.Wrap(apperrors.KindUnavailable, "failed to look up user", err)
	}
	if !checkPassword(u.PasswordHash, password) {
		return Session{}, ErrInvalidCredentials()
	}

	now := m.now().UTC()
	return Session{
		Username:  u.Username,
		IssuedAt:  now,
		ExpiresAt: now.Add(m.ttl),
	}, nil
}

// EnsureAdmin creates the administrator account when it does not exist yet.
//
// When password is empty a random one is generated; the caller is expected to
// print it exactly once. The returned password is empty when the account
// already existed or an operator-supplied password was used.
func EnsureAdmin(ctx context.Context, users UserStore, username, password string) (created bool, generated string, err error) {
	if users == nil {
		return false, "", errors.New("user store is required")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		return false, "", errors.New("admin username is required")
	}

	if _, err := users.GetUserByUsername(ctx, username); err == nil {
		return false, "", nil
	} else if !errors.Is(err, storage.ErrNotFound) {
		return false, "", fmt.Errorf("look up admin user: %w", err)
	}

	if password == "" {
		generated = randomPassword()
		password = generated
	}
	digest, err := HashPassword(password)
	if err != nil {
		return false, "", err
	}
	if _, err := users.InsertUser(ctx, user.User{
		Username:     username,
		PasswordHash: digest,
		CreatedAt:    time.Now().UTC(),
	}); err != nil {
		return false, "", fmt.Errorf("create admin user: %w", err)
	}
	return true, generated, nil
}

func randomPassword() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	return hex.EncodeToString(buf)
}
