package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the work factor every stored hash was created with.
const bcryptCost = 10

var (
	// ErrEmptyPassword rejects hashing an empty plaintext.
	ErrEmptyPassword = errors.New("password must not be empty")
	// ErrInvalidHash means a stored hash could not be parsed; it never
	// fires for a merely wrong password.
	ErrInvalidHash = errors.New("stored password hash is malformed")
)

// HashPassword derives a salted bcrypt hash of plaintext. The returned
// string embeds the algorithm, cost, and a fresh random salt, so two calls
// with the same plaintext produce different strings.
func HashPassword(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether plaintext matches the stored hash, using
// the salt and cost embedded in it. A wrong password is (false, nil); a
// non-nil error means the stored hash itself is unusable.
func VerifyPassword(plaintext, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrInvalidHash, err)
	}
}
