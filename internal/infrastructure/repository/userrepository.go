package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"ticketdesk/internal/domain/user"
	"ticketdesk/internal/infrastructure/persistence/mappers"
	"ticketdesk/internal/infrastructure/persistence/models"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// UserRepository implements the user repository interface with DDD patterns
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new DDD user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user. Uniqueness violations on email, username or
// google sub surface as conflict errors so races collapse into a handled
// outcome instead of a 500.
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			r.logger.Warnw("duplicate user rejected by unique constraint", "email", model.Email)
			return apperrors.NewConflictError("account already exists")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := userEntity.SetID(model.ID); err != nil {
		r.logger.Errorw("failed to set user ID", "error", err)
		return fmt.Errorf("failed to set user ID: %w", err)
	}

	r.logger.Infow("user created successfully", "id", model.ID, "email", model.Email)
	return nil
}

// Update persists changes to an existing user
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model, err := r.mapper.ToModel(userEntity)
	if err != nil {
		r.logger.Errorw("failed to map user entity to model", "error", err)
		return fmt.Errorf("failed to map user entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("account already exists")
		}
		r.logger.Errorw("failed to update user in database", "id", model.ID, "error", err)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by ID, returning (nil, nil) when absent
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", id, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}

	return entity, nil
}

// GetByEmail retrieves a user by normalized email, returning (nil, nil) when absent
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	entity, err := r.mapper.ToEntity(&model)
	if err != nil {
		r.logger.Errorw("failed to map user model to entity", "id", model.ID, "error", err)
		return nil, fmt.Errorf("failed to map user: %w", err)
	}

	return entity, nil
}

// UsernameExists reports whether the username is already taken
func (r *UserRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("username = ?", username).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check username existence", "username", username, "error", err)
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return count > 0, nil
}

// RedeemResetToken consumes an outstanding reset token in a single conditional
// update. The WHERE clause matches the token hash and requires the expiry to
// still be in the future, so of two concurrent redemptions only one can see
// RowsAffected == 1.
func (r *UserRepository) RedeemResetToken(ctx context.Context, tokenHash, newPasswordHash string, now time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.UserModel{}).
		Where("reset_token_hash = ? AND reset_token_expires_at > ?", tokenHash, now).
		Updates(map[string]interface{}{
			"password_hash":          newPasswordHash,
			"reset_token_hash":       nil,
			"reset_token_expires_at": nil,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to redeem reset token", "error", result.Error)
		return false, fmt.Errorf("failed to redeem reset token: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return false, nil
	}

	r.logger.Infow("password reset token redeemed")
	return true, nil
}
