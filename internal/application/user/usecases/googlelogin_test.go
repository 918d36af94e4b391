package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
)

func TestGoogleLoginUseCase_ExistingUser(t *testing.T) {
	existing := testUser(t, 1, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@example.com", Sub: "sub-1"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	result, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)

	assert.Equal(t, "signed-token", result.AccessToken)
	require.NotNil(t, existing.GoogleSub())
	assert.Equal(t, "sub-1", *existing.GoogleSub())
	// The fresh binding was persisted.
	require.Len(t, repo.updated, 1)
}

func TestGoogleLoginUseCase_SubAlreadyBound(t *testing.T) {
	existing := testUser(t, 1, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)
	existing.BindGoogleSub("sub-1")

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@example.com", Sub: "sub-1"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)

	// Unchanged binding means no write.
	assert.Empty(t, repo.updated)
}

func TestGoogleLoginUseCase_RebindsChangedSub(t *testing.T) {
	existing := testUser(t, 1, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)
	existing.BindGoogleSub("old-sub")

	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return existing, nil
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@example.com", Sub: "new-sub"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)

	require.NotNil(t, existing.GoogleSub())
	assert.Equal(t, "new-sub", *existing.GoogleSub())
	require.Len(t, repo.updated, 1)
}

func TestGoogleLoginUseCase_ProvisionsNewUser(t *testing.T) {
	repo := &mockUserRepo{}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "new.person@example.com", Sub: "sub-9"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	result, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "new.person", created.Username())
	assert.Equal(t, "new.person@example.com", created.Email().String())
	assert.Equal(t, authorization.RoleUser, created.Role())
	require.NotNil(t, created.GoogleSub())
	assert.Equal(t, "sub-9", *created.GoogleSub())
	assert.NotEmpty(t, created.PasswordHash())
	assert.Equal(t, created, result.User)
}

func TestGoogleLoginUseCase_UsernameCollisionSuffix(t *testing.T) {
	taken := map[string]bool{"alice": true, "alice2": true}
	repo := &mockUserRepo{
		usernameExistsFn: func(ctx context.Context, username string) (bool, error) {
			return taken[username], nil
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@other.com", Sub: "sub-2"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	assert.Equal(t, "alice3", repo.created[0].Username())
}

func TestGoogleLoginUseCase_AsAdminRequiresExistingAdmin(t *testing.T) {
	regular := testUser(t, 1, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)

	tests := []struct {
		name string
		user *user.User
	}{
		{"unknown account", nil},
		{"non-admin account", regular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
					return tt.user, nil
				},
			}
			verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@example.com", Sub: "sub-1"}}
			uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{}, testLogger())

			_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token", AsAdmin: true})
			require.Error(t, err)

			appErr := apperrors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
			assert.Empty(t, repo.created)
		})
	}
}

func TestGoogleLoginUseCase_AsAdminExistingAdmin(t *testing.T) {
	admin := testUser(t, 1, "root", "root@example.com", "hashed:x", authorization.RoleAdmin)
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			return admin, nil
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "root@example.com", Sub: "sub-1"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	result, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token", AsAdmin: true})
	require.NoError(t, err)
	assert.Equal(t, admin, result.User)
}

func TestGoogleLoginUseCase_InvalidToken(t *testing.T) {
	verifier := &mockGoogleVerifier{err: errors.New("token audience mismatch")}
	uc := NewGoogleLoginUseCase(&mockUserRepo{}, mockHasher{}, verifier, &mockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "bad"})
	require.Error(t, err)

	// The cause is not distinguishable from the message.
	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	assert.Equal(t, "Invalid Google token", appErr.Message)
}

func TestGoogleLoginUseCase_MissingClientID(t *testing.T) {
	verifier := &mockGoogleVerifier{err: auth.ErrGoogleClientIDNotConfigured}
	uc := NewGoogleLoginUseCase(&mockUserRepo{}, mockHasher{}, verifier, &mockJWTService{}, testLogger())

	_, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "any"})
	require.Error(t, err)

	appErr := apperrors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.ErrorTypeInternal, appErr.Type)
}

func TestGoogleLoginUseCase_ProvisionRaceFallsBackToWinner(t *testing.T) {
	winner := testUser(t, 3, "alice", "alice@example.com", "hashed:x", authorization.RoleUser)

	lookups := 0
	repo := &mockUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
			lookups++
			if lookups == 1 {
				// First lookup misses; the concurrent provision lands between
				// the miss and our insert.
				return nil, nil
			}
			return winner, nil
		},
		createFn: func(ctx context.Context, u *user.User) error {
			return apperrors.NewConflictError("account already exists")
		},
	}
	verifier := &mockGoogleVerifier{identity: &auth.GoogleIdentity{Email: "alice@example.com", Sub: "sub-1"}}
	uc := NewGoogleLoginUseCase(repo, mockHasher{}, verifier, &mockJWTService{token: "signed-token"}, testLogger())

	result, err := uc.Execute(context.Background(), GoogleLoginCommand{IDToken: "id-token"})
	require.NoError(t, err)
	assert.Equal(t, winner, result.User)
}
