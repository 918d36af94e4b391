package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const duplicateAccountMessage = "User with same email or username already exists"

type RegisterCommand struct {
	Username string
	Email    string
	Password string
}

type RegisterResult struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type RegisterUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	passwordPolicy *vo.PasswordPolicy
	logger         logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		passwordPolicy: vo.DefaultPasswordPolicy(),
		logger:         logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	return registerAccount(ctx, uc.userRepo, uc.passwordHasher, uc.passwordPolicy, uc.logger, cmd, authorization.RoleUser)
}

// registerAccount is shared by user and admin signup; the two differ only in
// the role assigned and the enrollment gate checked by the caller.
func registerAccount(
	ctx context.Context,
	userRepo user.Repository,
	hasher user.PasswordHasher,
	policy *vo.PasswordPolicy,
	log logger.Interface,
	cmd RegisterCommand,
	role authorization.UserRole,
) (*RegisterResult, error) {
	username, err := vo.NewUsername(cmd.Username)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	existing, err := userRepo.GetByEmail(ctx, email.String())
	if err != nil {
		log.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if existing != nil {
		return nil, apperrors.NewConflictError(duplicateAccountMessage)
	}

	taken, err := userRepo.UsernameExists(ctx, username)
	if err != nil {
		log.Errorw("failed to check username existence", "error", err)
		return nil, fmt.Errorf("failed to check username existence: %w", err)
	}
	if taken {
		return nil, apperrors.NewConflictError(duplicateAccountMessage)
	}

	if err := policy.Validate(cmd.Password); err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	passwordHash, err := hasher.Hash(cmd.Password)
	if err != nil {
		log.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, email, passwordHash, role)
	if err != nil {
		return nil, apperrors.NewValidationError(err.Error())
	}

	// The precheck and the insert race under concurrency; the unique
	// constraints are authoritative and the repository reports violations as
	// conflicts.
	if err := userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsConflictError(err) {
			return nil, apperrors.NewConflictError(duplicateAccountMessage)
		}
		log.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Infow("user registered", "user_id", newUser.ID(), "email", email.String(), "role", role.String())

	return &RegisterResult{
		ID:       newUser.ID(),
		Username: newUser.Username(),
		Email:    newUser.Email().String(),
		Role:     newUser.Role().String(),
	}, nil
}
