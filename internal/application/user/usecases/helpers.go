package usecases

import "strings"

// trimLower normalizes caller-supplied email input for lookup without
// rejecting malformed values; lookups on garbage simply find nothing.
func trimLower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
