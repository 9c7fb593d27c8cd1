package auth

import (
	"crypto/subtle"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// Verifier checks submitted admin credentials against the single configured
// admin identity. It is stateless; construction happens once at startup.
type Verifier struct {
	email        string
	passwordHash string
}

// NewVerifier builds a verifier from the configured admin email and bcrypt
// password hash.
func NewVerifier(email, passwordHash string) *Verifier {
	return &Verifier{email: email, passwordHash: passwordHash}
}

// HashPassword hashes a plaintext password using bcrypt. Used when only a
// plaintext admin secret is configured and the hash must be derived at
// startup.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether the submitted email and password match the admin
// identity. Both checks run on every call so a wrong email costs the same
// as a wrong password. Never returns an error for a mismatch.
func (v *Verifier) Verify(email, password string) bool {
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(v.email)) == 1
	passwordOK := bcrypt.CompareHashAndPassword(
		[]byte(v.passwordHash),
		[]byte(password),
	) == nil

	return emailOK && passwordOK
}
