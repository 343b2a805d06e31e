// Package auth implements the credential check gating the calculator.
package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Credentials carries one login attempt.
type Credentials struct {
	Username string
	Password string
}

// Authenticator decides whether a caller may use the calculator. It is a
// boolean pass/fail check; no tokens are issued and no session state is kept.
type Authenticator interface {
	Verify(creds Credentials) bool
}

// Static authenticates against a single fixed credential pair.
type Static struct {
	username     string
	passwordHash []byte
}

// NewStatic builds an authenticator from a username and bcrypt password hash.
func NewStatic(username, passwordHash string) *Static {
	return &Static{username: username, passwordHash: []byte(passwordHash)}
}

// NewStaticFromPassword builds an authenticator from a plaintext password,
// hashing it at construction so the plaintext is not retained.
func NewStaticFromPassword(username, password string) (*Static, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	return &Static{username: username, passwordHash: hash}, nil
}

// Verify reports whether the supplied credentials match the configured pair.
func (s *Static) Verify(creds Credentials) bool {
	if s.username == "" || len(s.passwordHash) == 0 {
		return false
	}
	usernameMatch := subtle.ConstantTimeCompare([]byte(s.username), []byte(creds.Username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(s.passwordHash, []byte(creds.Password)) == nil
	return usernameMatch && passwordMatch
}

// Denied rejects every credential pair. It is the fallback when no
// credentials are configured.
type Denied struct{}

// Verify always fails.
func (Denied) Verify(Credentials) bool { return false }
