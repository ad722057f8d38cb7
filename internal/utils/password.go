package utils

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by HashPassword for passwords bcrypt cannot
// hash (longer than 72 bytes).
var ErrPasswordTooLong = errors.New("password is too long")

// HashPassword derives a salted bcrypt hash of password with the given cost.
//
// A cost outside [bcrypt.MinCost, bcrypt.MaxCost] is replaced by
// bcrypt.DefaultCost, which is 10.
//
// Parameters:
//
//	password - plaintext password
//	cost     - bcrypt work factor
//
// Returns:
//
//	string - the encoded hash including algorithm, cost and salt
//	error  - ErrPasswordTooLong or a wrapped bcrypt error
//
// Example usage:
//
//	hash, err := utils.HashPassword("s3cret", bcrypt.DefaultCost)
func HashPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// ComparePassword reports whether password matches the bcrypt hash.
// A nil error means the password is correct.
func ComparePassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
