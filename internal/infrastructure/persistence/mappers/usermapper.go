package mappers

import (
	"fmt"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/infrastructure/persistence/models"
	"ticketdesk/internal/shared/authorization"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	email, err := vo.NewEmail(model.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to create email value object: %w", err)
	}

	entity, err := user.ReconstructUser(
		model.ID,
		model.Username,
		email,
		model.PasswordHash,
		authorization.ParseUserRole(model.Role),
		model.GoogleSub,
		model.ResetTokenHash,
		model.ResetTokenExpiresAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}

	return entity, nil
}

func (m *userMapper) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:                  entity.ID(),
		Username:            entity.Username(),
		Email:               entity.Email().String(),
		PasswordHash:        entity.PasswordHash(),
		Role:                entity.Role().String(),
		GoogleSub:           entity.GoogleSub(),
		ResetTokenHash:      entity.ResetTokenHash(),
		ResetTokenExpiresAt: entity.ResetTokenExpiresAt(),
		CreatedAt:           entity.CreatedAt(),
		UpdatedAt:           entity.UpdatedAt(),
	}, nil
}
