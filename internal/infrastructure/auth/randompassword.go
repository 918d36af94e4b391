package auth

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
)

const (
	randomPasswordLength   = 24
	randomPasswordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// GenerateRandomPassword produces a locally-unmanaged strong password for
// accounts created on first federated login. The plaintext is hashed and
// discarded; such accounts cannot be used for password login.
func GenerateRandomPassword() (string, error) {
	var b strings.Builder
	b.Grow(randomPasswordLength)

	max := big.NewInt(int64(len(randomPasswordAlphabet)))
	for i := 0; i < randomPasswordLength; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random password: %w", err)
		}
		b.WriteByte(randomPasswordAlphabet[n.Int64()])
	}

	return b.String(), nil
}

func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
