package valueobjects

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// ResetToken is a single-use password reset credential. The plaintext value
// is handed to the caller exactly once; only the one-way hash is persisted.
type ResetToken struct {
	value string
	hash  string
}

// GenerateResetToken creates a new high-entropy reset token.
func GenerateResetToken() (*ResetToken, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return nil, fmt.Errorf("failed to generate random token: %w", err)
	}

	value := base64.RawURLEncoding.EncodeToString(bytes)

	return &ResetToken{
		value: value,
		hash:  HashResetToken(value),
	}, nil
}

// Value returns the plaintext token. It cannot be recovered once discarded.
func (t *ResetToken) Value() string {
	return t.value
}

// Hash returns the persistable one-way hash of the token.
func (t *ResetToken) Hash() string {
	return t.hash
}

// HashResetToken computes the one-way hash of a presented token value.
func HashResetToken(value string) string {
	sum := sha256.Sum256([]byte(value))
	return hex.EncodeToString(sum[:])
}
