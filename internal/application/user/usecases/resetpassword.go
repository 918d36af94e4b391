package usecases

import (
	"context"
	"fmt"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/shared/biztime"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

// ResetPasswordUseCase redeems a single-use reset token. The policy check
// runs before the token lookup so a weak password never consumes the token,
// and redemption itself is a single conditional update so two concurrent
// requests with the same token cannot both succeed.
type ResetPasswordUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	passwordPolicy *vo.PasswordPolicy
	logger         logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		passwordPolicy: vo.DefaultPasswordPolicy(),
		logger:         logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if err := uc.passwordPolicy.Validate(cmd.NewPassword); err != nil {
		return apperrors.NewValidationError(err.Error())
	}

	passwordHash, err := uc.passwordHasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	tokenHash := vo.HashResetToken(cmd.Token)
	redeemed, err := uc.userRepo.RedeemResetToken(ctx, tokenHash, passwordHash, biztime.NowUTC())
	if err != nil {
		uc.logger.Errorw("failed to redeem reset token", "error", err)
		return fmt.Errorf("failed to redeem reset token: %w", err)
	}

	// Unknown, expired and already-consumed tokens are indistinguishable.
	if !redeemed {
		return apperrors.NewValidationError("Invalid or expired reset token.")
	}

	uc.logger.Infow("password reset completed")
	return nil
}
