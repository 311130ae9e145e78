package auth

import (
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"notekeeper/internal/common"
)

// MinPasswordLen is the minimum accepted password length, matching the
// client-side check so server validation is never looser.
const MinPasswordLen = 6

// HashPassword validates and bcrypt-hashes a plaintext password.
func HashPassword(password string) ([]byte, error) {
	if len(password) < MinPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", common.ErrorValidation, MinPasswordLen)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	return hash, nil
}

// CheckPassword reports whether the candidate matches the stored hash.
func CheckPassword(hash []byte, candidate string) bool {
	return bcrypt.CompareHashAndPassword(hash, []byte(candidate)) == nil
}

// NormalizeEmail lowercases and trims an email address, and rejects values
// without an @ between non-empty parts.
func NormalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", fmt.Errorf("%w: invalid email", common.ErrorValidation)
	}
	return email, nil
}
