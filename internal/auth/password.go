package auth

import (
	"crypto/subtle"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// PlaintextVerifier stores secrets as-is. It reproduces the original demo's
// behavior and is the default; do not use it outside demo data.
type PlaintextVerifier struct{}

// Hash returns the secret unchanged.
func (PlaintextVerifier) Hash(secret string) (string, error) {
	return secret, nil
}

// Verify compares in constant time despite the plaintext storage, so a
// later switch to hashed storage does not change the timing profile.
func (PlaintextVerifier) Verify(secret, stored string) bool {
	return subtle.ConstantTimeCompare([]byte(secret), []byte(stored)) == 1
}

// BcryptVerifier stores secrets as bcrypt hashes.
type BcryptVerifier struct{}

// Hash derives a bcrypt hash at the default cost.
func (BcryptVerifier) Hash(secret string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(secret), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify compares the secret against the stored bcrypt hash.
func (BcryptVerifier) Verify(secret, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(secret)) == nil
}

// NewVerifier returns the verifier for the named scheme. Unknown schemes
// fall back to plaintext, the demo default.
func NewVerifier(scheme string) Verifier {
	if scheme == "bcrypt" {
		return BcryptVerifier{}
	}
	return PlaintextVerifier{}
}
