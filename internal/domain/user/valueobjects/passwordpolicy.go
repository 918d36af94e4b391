package valueobjects

import (
	"fmt"
	"strings"
	"unicode"
)

// PasswordPolicy defines the password strength rules enforced at signup,
// admin signup and password reset. Login is deliberately exempt so accounts
// created under a weaker historical policy keep working.
type PasswordPolicy struct {
	MinLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireNumber    bool
	RequireSpecial   bool
}

// DefaultPasswordPolicy returns the password policy used by the service.
func DefaultPasswordPolicy() *PasswordPolicy {
	return &PasswordPolicy{
		MinLength:        10,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireNumber:    true,
		RequireSpecial:   true,
	}
}

// Missing returns every unmet requirement for the given password. All checks
// run independently so the caller can report one actionable message naming
// each missing criterion; an empty slice means the password is acceptable.
func (p *PasswordPolicy) Missing(password string) []string {
	var (
		hasUppercase bool
		hasLowercase bool
		hasNumber    bool
		hasSpecial   bool
	)

	for _, char := range password {
		switch {
		case unicode.IsUpper(char):
			hasUppercase = true
		case unicode.IsLower(char):
			hasLowercase = true
		case unicode.IsNumber(char):
			hasNumber = true
		default:
			hasSpecial = true
		}
	}

	var missing []string
	if len(password) < p.MinLength {
		missing = append(missing, fmt.Sprintf("at least %d characters", p.MinLength))
	}
	if p.RequireUppercase && !hasUppercase {
		missing = append(missing, "an uppercase letter")
	}
	if p.RequireLowercase && !hasLowercase {
		missing = append(missing, "a lowercase letter")
	}
	if p.RequireNumber && !hasNumber {
		missing = append(missing, "a digit")
	}
	if p.RequireSpecial && !hasSpecial {
		missing = append(missing, "a special character")
	}

	return missing
}

// Validate checks the password against the policy and returns a single error
// enumerating every unmet requirement, or nil if the password is acceptable.
func (p *PasswordPolicy) Validate(password string) error {
	missing := p.Missing(password)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("Weak password. Include %s.", strings.Join(missing, ", "))
}
