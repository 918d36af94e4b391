package valueobjects

import (
	"fmt"
	"regexp"
	"strings"
)

const maxUsernameLength = 30

var usernameCleanRegex = regexp.MustCompile(`[^a-z0-9_.-]`)

// NewUsername validates a caller-supplied username.
func NewUsername(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", fmt.Errorf("username cannot be empty")
	}
	if len(trimmed) > maxUsernameLength {
		return "", fmt.Errorf("username cannot exceed %d characters", maxUsernameLength)
	}
	return trimmed, nil
}

// DeriveUsername builds a base username from an email's local part for
// accounts created on first federated login: lowercased, stripped of
// characters outside [a-z0-9_.-], "user" when nothing survives, capped at
// 30 characters. Collision resolution by numeric suffix happens at the
// reconciliation layer, which can consult the store.
func DeriveUsername(email *Email) string {
	local := strings.ToLower(strings.TrimSpace(email.LocalPart()))
	clean := usernameCleanRegex.ReplaceAllString(local, "")
	if clean == "" {
		clean = "user"
	}
	if len(clean) > maxUsernameLength {
		clean = clean[:maxUsernameLength]
	}
	return clean
}
