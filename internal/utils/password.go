package utils

import (
	"errors"

	"review_project/internal/domain"

	"golang.org/x/crypto/bcrypt"
)

// VerifyPassword reports whether password matches the stored bcrypt hash.
// A malformed hash is an internal error, not a mismatch.
func VerifyPassword(hashed, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.Internal("verify password", err)
	}
}

func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.Internal("hash password", err)
	}
	return string(hashed), nil
}
