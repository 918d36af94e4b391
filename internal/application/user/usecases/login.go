package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/user"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User        *user.User
	AccessToken string
	ExpiresIn   int64
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	jwtService     JWTService
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, trimLower(cmd.Email))
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown email and wrong password are the same failure so the response
	// does not reveal whether the account exists.
	if existingUser == nil {
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.passwordHasher); err != nil {
		uc.logger.Warnw("password verification failed", "user_id", existingUser.ID())
		return nil, apperrors.NewUnauthorizedError("Invalid credentials")
	}

	token, err := uc.jwtService.Generate(existingUser.Email().String(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_id", existingUser.ID())

	return &LoginResult{
		User:        existingUser,
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtService.AccessExpMinutes()) * 60,
	}, nil
}
