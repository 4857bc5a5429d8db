// Package security provides the operator PIN check that guards the
// maintenance options of the vending console. PINs are stored as bcrypt hashes.
package security

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrEmptyPIN indicates an attempt to hash an empty operator PIN.
	ErrEmptyPIN = errors.New("security: empty operator PIN")
	// ErrMalformedHash indicates a configured PIN hash that bcrypt cannot read.
	ErrMalformedHash = errors.New("security: malformed operator PIN hash")
)

// HashPIN takes a plaintext operator PIN and returns its bcrypt hash.
func HashPIN(pin string) (string, error) {
	if strings.TrimSpace(pin) == "" {
		return "", ErrEmptyPIN
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// ValidateHash reports whether hash is a bcrypt hash that CheckPIN can compare against.
func ValidateHash(hash string) error {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedHash, err)
	}
	return nil
}

// CheckPIN compares a bcrypt hashed PIN with its possible plaintext equivalent.
// It returns nil on success, or bcrypt.ErrMismatchedHashAndPassword when the PIN is wrong.
func CheckPIN(hashedPIN, pin string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPIN), []byte(pin))
}
