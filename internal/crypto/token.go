package crypto

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// TokenSize длина случайной части refresh token в байтах
const TokenSize = 32

// GenerateToken создает случайный токен заданной длины в base64url
func GenerateToken(size int) (string, error) {
	if size <= 0 {
		return "", fmt.Errorf("token size must be positive")
	}

	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate random token: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(b), nil
}
