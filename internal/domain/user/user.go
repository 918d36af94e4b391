package user

import (
	"fmt"
	"time"

	"ticketdesk/internal/shared/authorization"

	vo "ticketdesk/internal/domain/user/valueobjects"
)

// User is the account aggregate root (pure domain model without persistence
// concerns). The password hash is opaque here; hashing and verification live
// behind the PasswordHasher port.
type User struct {
	id                  uint
	username            string
	email               *vo.Email
	passwordHash        string
	role                authorization.UserRole
	googleSub           *string
	resetTokenHash      *string
	resetTokenExpiresAt *time.Time
	createdAt           time.Time
	updatedAt           time.Time
}

// NewUser creates a new user aggregate with an already-hashed password.
func NewUser(username string, email *vo.Email, passwordHash string, role authorization.UserRole) (*User, error) {
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now().UTC()
	return &User{
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// ReconstructUser rebuilds a user aggregate from persistence.
func ReconstructUser(
	id uint,
	username string,
	email *vo.Email,
	passwordHash string,
	role authorization.UserRole,
	googleSub *string,
	resetTokenHash *string,
	resetTokenExpiresAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == nil {
		return nil, fmt.Errorf("email is required")
	}

	return &User{
		id:                  id,
		username:            username,
		email:               email,
		passwordHash:        passwordHash,
		role:                role,
		googleSub:           googleSub,
		resetTokenHash:      resetTokenHash,
		resetTokenExpiresAt: resetTokenExpiresAt,
		createdAt:           createdAt,
		updatedAt:           updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() *vo.Email {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) Role() authorization.UserRole {
	return u.role
}

func (u *User) GoogleSub() *string {
	return u.googleSub
}

func (u *User) ResetTokenHash() *string {
	return u.resetTokenHash
}

func (u *User) ResetTokenExpiresAt() *time.Time {
	return u.resetTokenExpiresAt
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

// SetID sets the user ID (only for persistence layer use)
func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

// BindGoogleSub records the external identity subject asserted at the latest
// federated login. Re-binding over a differing stored sub is allowed; it
// returns true when the stored value actually changed.
func (u *User) BindGoogleSub(sub string) bool {
	if sub == "" {
		return false
	}
	if u.googleSub != nil && *u.googleSub == sub {
		return false
	}
	u.googleSub = &sub
	u.updatedAt = time.Now().UTC()
	return true
}

// SetResetToken stores the hash and expiry of a freshly issued reset token,
// overwriting any previous outstanding token for this account.
func (u *User) SetResetToken(hash string, expiresAt time.Time) {
	u.resetTokenHash = &hash
	u.resetTokenExpiresAt = &expiresAt
	u.updatedAt = time.Now().UTC()
}
