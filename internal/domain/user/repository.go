package user

import (
	"context"
	"time"
)

// Repository is the persistence port for the user aggregate. Lookup methods
// return (nil, nil) when no matching account exists.
type Repository interface {
	// Create persists a new user. Storage-level uniqueness violations on
	// email, username or google sub surface as conflict errors.
	Create(ctx context.Context, u *User) error

	// Update persists changes to an existing user.
	Update(ctx context.Context, u *User) error

	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)

	// UsernameExists reports whether the username is already taken.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// RedeemResetToken atomically consumes an outstanding reset token: in a
	// single conditional update it matches the token hash, requires the
	// stored expiry to be after now, sets the new password hash and clears
	// both token fields. Returns false when no row matched, so two
	// concurrent redemptions of the same token cannot both succeed.
	RedeemResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error)
}
