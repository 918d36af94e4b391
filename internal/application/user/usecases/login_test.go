package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestLoginUseCase_Execute(t *testing.T) {
	existing := testUser(t, 1, "alice", "alice@example.com", "hashed:Str0ng!Passw0rd", authorization.RoleUser)
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "alice@example.com", email)
			return existing, nil
		},
	}
	uc := NewLoginUseCase(repo, mockHasher{}, &mockJWTService{token: "signed-token"}, testLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "  Alice@Example.COM  ",
		Password: "Str0ng!Passw0rd",
	})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, int64(3600), result.ExpiresIn)
	assert.Equal(t, existing, result.User)
}

func TestLoginUseCase_UnknownEmail(t *testing.T) {
	uc := NewLoginUseCase(&mockUserRepo{}, mockHasher{}, &mockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeUnauthorized, appErr.Type)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}

func TestLoginUseCase_WrongPassword(t *testing.T) {
	existing := testUser(t, 1, "alice", "alice@example.com", "hashed:correct", authorization.RoleUser)
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	uc := NewLoginUseCase(repo, mockHasher{}, &mockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "alice@example.com",
		Password: "wrong",
	})
	require.Error(t, err)

	// Same message as the unknown-email case.
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid credentials", appErr.Message)
}
