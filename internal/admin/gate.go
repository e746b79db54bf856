// Package admin guards the results dashboard behind a shared secret.
package admin

import (
	"crypto/subtle"
	"errors"
)

// ErrAccessDenied is returned when a password does not match.
var ErrAccessDenied = errors.New("access denied")

// Gate checks passwords against a static shared secret.
// It is a deterrent on a shared machine, not authentication.
type Gate struct {
	secret []byte
}

// NewGate creates a Gate for secret.
func NewGate(secret string) *Gate {
	return &Gate{secret: []byte(secret)}
}

// Check returns nil when password matches the secret.
func (g *Gate) Check(password string) error {
	if len(g.secret) == 0 {
		return ErrAccessDenied
	}
	if subtle.ConstantTimeCompare([]byte(password), g.secret) != 1 {
		return ErrAccessDenied
	}
	return nil
}
