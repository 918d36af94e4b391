package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.UserModel{}, &models.TicketModel{}))
	return db
}

func createTestUser(t *testing.T, username, email string) *user.User {
	t.Helper()

	emailVO, err := vo.NewEmail(email)
	require.NoError(t, err)

	u, err := user.NewUser(username, emailVO, "hashed-password", authorization.RoleUser)
	require.NoError(t, err)
	return u
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))
	assert.NotZero(t, u.ID())

	byEmail, err := repo.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, "alice", byEmail.Username())
	assert.Equal(t, u.ID(), byEmail.ID())

	byID, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, byID)
	assert.Equal(t, "alice@example.com", byID.Email().String())
}

func TestUserRepository_GetMissingReturnsNil(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	byEmail, err := repo.GetByEmail(ctx, "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, byEmail)

	byID, err := repo.GetByID(ctx, 12345)
	require.NoError(t, err)
	assert.Nil(t, byID)
}

func TestUserRepository_CreateDuplicateEmail(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice", "alice@example.com")))

	err := repo.Create(ctx, createTestUser(t, "alice2", "alice@example.com"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUserRepository_CreateDuplicateUsername(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice", "alice@example.com")))

	err := repo.Create(ctx, createTestUser(t, "alice", "other@example.com"))
	require.Error(t, err)
	assert.True(t, apperrors.IsConflictError(err))
}

func TestUserRepository_UsernameExists(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, createTestUser(t, "alice", "alice@example.com")))

	taken, err := repo.UsernameExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, taken)

	free, err := repo.UsernameExists(ctx, "bob")
	require.NoError(t, err)
	assert.False(t, free)
}

func TestUserRepository_UpdatePersistsGoogleSub(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()

	u := createTestUser(t, "alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	u.BindGoogleSub("sub-123")
	require.NoError(t, repo.Update(ctx, u))

	reloaded, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	require.NotNil(t, reloaded.GoogleSub())
	assert.Equal(t, "sub-123", *reloaded.GoogleSub())
}

func TestUserRepository_RedeemResetToken(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	u := createTestUser(t, "alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	u.SetResetToken("token-hash-1", now.Add(30*time.Minute))
	require.NoError(t, repo.Update(ctx, u))

	redeemed, err := repo.RedeemResetToken(ctx, "token-hash-1", "new-password-hash", now)
	require.NoError(t, err)
	assert.True(t, redeemed)

	reloaded, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "new-password-hash", reloaded.PasswordHash())
	assert.Nil(t, reloaded.ResetTokenHash())
	assert.Nil(t, reloaded.ResetTokenExpiresAt())

	// The token was consumed; a second redemption finds nothing.
	again, err := repo.RedeemResetToken(ctx, "token-hash-1", "another-hash", now)
	require.NoError(t, err)
	assert.False(t, again)
}

func TestUserRepository_RedeemResetToken_Expired(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())
	ctx := context.Background()
	now := time.Now().UTC()

	u := createTestUser(t, "alice", "alice@example.com")
	require.NoError(t, repo.Create(ctx, u))

	u.SetResetToken("token-hash-1", now.Add(-time.Minute))
	require.NoError(t, repo.Update(ctx, u))

	redeemed, err := repo.RedeemResetToken(ctx, "token-hash-1", "new-password-hash", now)
	require.NoError(t, err)
	assert.False(t, redeemed)

	// The stored password is untouched.
	reloaded, err := repo.GetByID(ctx, u.ID())
	require.NoError(t, err)
	assert.Equal(t, "hashed-password", reloaded.PasswordHash())
}

func TestUserRepository_RedeemResetToken_UnknownHash(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t), logger.NewLogger())

	redeemed, err := repo.RedeemResetToken(context.Background(), "no-such-hash", "new-hash", time.Now().UTC())
	require.NoError(t, err)
	assert.False(t, redeemed)
}
