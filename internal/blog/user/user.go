// Package user holds the administrator identity model.
package user

import "time"

// User is an administrator account. PasswordHash is a bcrypt digest; the
// plaintext password is never stored.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
