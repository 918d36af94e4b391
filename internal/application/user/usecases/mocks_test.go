package usecases

import (
	"context"
	"time"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/authorization"
	"ticketdesk/internal/shared/logger"
)

// mockUserRepo implements user.Repository with overridable behaviors.
type mockUserRepo struct {
	getByEmailFn       func(ctx context.Context, email string) (*user.User, error)
	getByIDFn          func(ctx context.Context, id uint) (*user.User, error)
	usernameExistsFn   func(ctx context.Context, username string) (bool, error)
	createFn           func(ctx context.Context, u *user.User) error
	updateFn           func(ctx context.Context, u *user.User) error
	redeemResetTokenFn func(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error)

	created []*user.User
	updated []*user.User
}

func (m *mockUserRepo) Create(ctx context.Context, u *user.User) error {
	m.created = append(m.created, u)
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return u.SetID(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *user.User) error {
	m.updated = append(m.updated, u)
	if m.updateFn != nil {
		return m.updateFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) UsernameExists(ctx context.Context, username string) (bool, error) {
	if m.usernameExistsFn != nil {
		return m.usernameExistsFn(ctx, username)
	}
	return false, nil
}

func (m *mockUserRepo) RedeemResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error) {
	if m.redeemResetTokenFn != nil {
		return m.redeemResetTokenFn(ctx, tokenHash, newPasswordHash, now)
	}
	return false, nil
}

// mockHasher avoids bcrypt cost in tests; verification is plain comparison.
type mockHasher struct{}

func (mockHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (mockHasher) Verify(password, hash string) error {
	if hash == "hashed:"+password {
		return nil
	}
	return errVerifyFailed
}

type verifyError string

func (e verifyError) Error() string { return string(e) }

const errVerifyFailed = verifyError("password verification failed")

type mockJWTService struct {
	token string
	err   error
}

func (m *mockJWTService) Generate(subject string, role authorization.UserRole) (string, error) {
	return m.token, m.err
}

func (m *mockJWTService) AccessExpMinutes() int { return 60 }

type mockGoogleVerifier struct {
	identity *auth.GoogleIdentity
	err      error
}

func (m *mockGoogleVerifier) Verify(ctx context.Context, idToken string) (*auth.GoogleIdentity, error) {
	return m.identity, m.err
}

type mockEmailService struct {
	sentTo     []string
	sentTokens []string
	err        error
}

func (m *mockEmailService) SendPasswordResetEmail(to, token string) error {
	m.sentTo = append(m.sentTo, to)
	m.sentTokens = append(m.sentTokens, token)
	return m.err
}

func testLogger() logger.Interface {
	return logger.NewLogger()
}
