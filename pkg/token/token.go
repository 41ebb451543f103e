package token

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// DefaultLength is the number of random bytes behind a generated token.
// 32 bytes gives 256 bits of entropy before encoding.
const DefaultLength = 32

// New generates a cryptographically random, URL-safe opaque token.
// Used for both session identifiers and password reset tokens.
func New() (string, error) {
	return NewWithLength(DefaultLength)
}

// NewWithLength generates a token backed by n random bytes.
func NewWithLength(n int) (string, error) {
	if n <= 0 {
		return "", fmt.Errorf("token length must be positive, got %d", n)
	}

	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
