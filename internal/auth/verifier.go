// Package auth provides credential verification for the directory and
// session layers.
package auth

import "errors"

// Expected, recoverable auth conditions surfaced to the presentation layer.
var (
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrEmailExists            = errors.New("email already exists")
	ErrEmailNotFound          = errors.New("email not found")
	ErrInvalidCurrentPassword = errors.New("current password is incorrect")
	ErrNotAuthenticated       = errors.New("not authenticated")
	ErrWeakPassword           = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the minimum accepted password length, matching the
// original app's registration form check.
const MinPasswordLength = 6

// Verifier abstracts how a login secret is checked against the stored
// credential. This abstraction allows swapping between storage schemes
// (plaintext demo data, bcrypt, a future KDF) without changing the
// directory or session code.
type Verifier interface {
	// Hash converts a new secret into its stored form.
	Hash(secret string) (string, error)

	// Verify reports whether secret matches the stored credential.
	Verify(secret, stored string) bool
}

// ValidatePassword checks that a new password meets the minimum requirements.
func ValidatePassword(secret string) error {
	if len(secret) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
