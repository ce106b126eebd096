package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// HashPassword will generate a password hash. Output is salted, so two
// calls on the same input never match byte for byte.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", ErrNoEmptyString
	}

	h, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost())
	return string(h), err
}

// ComparePasswordAndHash will validate the given cleartext password matches
// the hashed password. Every failure, including a malformed or truncated
// hash, collapses into ErrMismatchedHashAndPassword so nothing about the
// stored value leaks.
func ComparePasswordAndHash(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrMismatchedHashAndPassword
	}
	return nil
}
