package auth

import (
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher hashes new passwords with bcrypt and verifies hashes from
// every scheme still present in the store. The scheme is negotiated from the
// hash's own prefix, so legacy argon2id hashes keep verifying without being
// rewritten at verify time.
type PasswordHasher struct {
	cost int
}

func NewPasswordHasher(cost int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to generate password hash: %w", err)
	}
	return string(hash), nil
}

// Verify checks a plaintext password against a stored hash. It returns the
// same generic error for every failure cause so callers cannot distinguish
// a wrong password from a malformed or unknown-scheme hash.
func (h *PasswordHasher) Verify(password, hash string) error {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, hash)
		if err != nil || !match {
			return fmt.Errorf("password verification failed")
		}
		return nil
	case strings.HasPrefix(hash, "$2a$"), strings.HasPrefix(hash, "$2b$"), strings.HasPrefix(hash, "$2y$"):
		if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
			return fmt.Errorf("password verification failed")
		}
		return nil
	default:
		return fmt.Errorf("password verification failed")
	}
}
