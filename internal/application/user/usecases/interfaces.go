package usecases

import (
	"context"

	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/authorization"
)

// JWTService mints and inspects access tokens for authenticated sessions.
type JWTService interface {
	Generate(subject string, role authorization.UserRole) (string, error)
	AccessExpMinutes() int
}

// GoogleTokenVerifier validates an externally obtained ID token and returns
// the asserted identity.
type GoogleTokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error)
}

// EmailService delivers transactional mail.
type EmailService interface {
	SendPasswordResetEmail(to, token string) error
}
