// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"time"

	"github.com/alexedwards/scs/v2"
	"golang.org/x/crypto/bcrypt"
)

// SessionKeyUser is the session key holding the signed-in username.
// Empty or absent means the caller is anonymous.
const SessionKeyUser = "username"

var ErrBadCredentials = errors.New("invalid username or password")

// NewSessionManager returns a session manager backed by the default
// in-memory store. Sessions are server-side; the cookie carries only a
// random token.
func NewSessionManager() *scs.SessionManager {
	sessions := scs.New()
	sessions.Lifetime = 12 * time.Hour
	sessions.Cookie.HttpOnly = true
	return sessions
}

// HashPassword returns the bcrypt hash of a password.
func HashPassword(password string) ([]byte, error) {
	return bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
}

// PasswordMatches checks a password against a stored hash. A mismatch
// is (false, nil); only unexpected failures return an error.
func PasswordMatches(hash []byte, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword(hash, []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, err
	}
}
