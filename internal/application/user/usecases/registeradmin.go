package usecases

import (
	"context"
	"crypto/subtle"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type RegisterAdminCommand struct {
	Username  string
	Email     string
	Password  string
	AdminCode string
}

// RegisterAdminUseCase enrolls an administrator account. Enrollment is gated
// by a shared signup code checked before anything else.
type RegisterAdminUseCase struct {
	userRepo        user.Repository
	passwordHasher  user.PasswordHasher
	passwordPolicy  *vo.PasswordPolicy
	adminSignupCode string
	logger          logger.Interface
}

func NewRegisterAdminUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	adminSignupCode string,
	logger logger.Interface,
) *RegisterAdminUseCase {
	return &RegisterAdminUseCase{
		userRepo:        userRepo,
		passwordHasher:  hasher,
		passwordPolicy:  vo.DefaultPasswordPolicy(),
		adminSignupCode: adminSignupCode,
		logger:          logger,
	}
}

func (uc *RegisterAdminUseCase) Execute(ctx context.Context, cmd RegisterAdminCommand) (*RegisterResult, error) {
	if subtle.ConstantTimeCompare([]byte(cmd.AdminCode), []byte(uc.adminSignupCode)) != 1 {
		uc.logger.Warnw("admin signup rejected, invalid code", "email", cmd.Email)
		return nil, apperrors.NewForbiddenError("Invalid admin signup code")
	}

	return registerAccount(ctx, uc.userRepo, uc.passwordHasher, uc.passwordPolicy, uc.logger, RegisterCommand{
		Username: cmd.Username,
		Email:    cmd.Email,
		Password: cmd.Password,
	}, authorization.RoleAdmin)
}
