package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
)

func testUser(t *testing.T, id uint, username, email, passwordHash string, role authorization.UserRole) *user.User {
	t.Helper()

	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)

	now := time.Now().UTC()
	u, err := user.ReconstructUser(id, username, emailVO, passwordHash, role, nil, nil, nil, now, now)
	require.NoError(t, err)
	return u
}

func TestRegisterUseCase_Execute(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewRegisterUseCase(repo, mockHasher{}, testLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "Alice@Example.com",
		Password: "Str0ng!Passw0rd",
	})
	require.NoError(t, err)

	assert.Equal(t, uint(1), result.ID)
	assert.Equal(t, "alice", result.Username)
	assert.Equal(t, "alice@example.com", result.Email)
	assert.Equal(t, "user", result.Role)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "hashed:Str0ng!Passw0rd", repo.created[0].PasswordHash())
}

func TestRegisterUseCase_WeakPassword(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewRegisterUseCase(repo, mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "weakpass",
	})
	require.Error(t, err)

	assert.True(t, apperrors.IsValidationError(err))
	assert.Contains(t, apperrors.GetAppError(err).Message, "Weak password. Include")
	assert.Empty(t, repo.created)
}

func TestRegisterUseCase_DuplicateEmail(t *testing.T) {
	existing := testUser(t, 5, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	uc := NewRegisterUseCase(repo, mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice2",
		Email:    "alice@example.com",
		Password: "Str0ng!Passw0rd",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterUseCase_DuplicateUsername(t *testing.T) {
	repo := &mockUserRepo{
		usernameExistsFn: func(ctx context.Context, username string) (bool, error) {
			return true, nil
		},
	}
	uc := NewRegisterUseCase(repo, mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!Passw0rd",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterUseCase_CreateRace(t *testing.T) {
	// The precheck passes but the insert hits the unique constraint.
	repo := &mockUserRepo{
		createFn: func(ctx context.Context, u *user.User) error {
			return apperrors.NewConflictError("account already exists")
		},
	}
	uc := NewRegisterUseCase(repo, mockHasher{}, testLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "Str0ng!Passw0rd",
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestRegisterAdminUseCase_Execute(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewRegisterAdminUseCase(repo, mockHasher{}, "SECRET42", testLogger())

	result, err := uc.Execute(context.Background(), RegisterAdminCommand{
		Username:  "root",
		Email:     "root@example.com",
		Password:  "Str0ng!Passw0rd",
		AdminCode: "SECRET42",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin", result.Role)
}

func TestRegisterAdminUseCase_InvalidCode(t *testing.T) {
	repo := &mockUserRepo{}
	uc := NewRegisterAdminUseCase(repo, mockHasher{}, "SECRET42", testLogger())

	_, err := uc.Execute(context.Background(), RegisterAdminCommand{
		Username:  "root",
		Email:     "root@example.com",
		Password:  "Str0ng!Passw0rd",
		AdminCode: "wrong",
	})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
	assert.Empty(t, repo.created)
}
