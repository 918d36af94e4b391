package usecases

import (
	"context"
	"fmt"
	"sync"
	"time"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/shared/biztime"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

const (
	// rateLimitWindow is the time window for rate limiting password reset requests
	rateLimitWindow = 1 * time.Minute
	// rateLimitCleanupInterval is how often expired entries are cleaned up
	rateLimitCleanupInterval = 10 * time.Minute

	// neutralResetMessage is returned whether or not the account exists.
	neutralResetMessage = "If the account exists, a reset link has been generated."
)

type ForgotPasswordCommand struct {
	Email string
}

// ForgotPasswordResult always carries the neutral message. ResetToken holds
// the raw single-use token when an account matched; it doubles as the
// development-mode fallback when email delivery is not configured.
type ForgotPasswordResult struct {
	Message          string
	ResetToken       string
	ExpiresInMinutes int
}

type ForgotPasswordUseCase struct {
	userRepo            user.Repository
	emailService        EmailService
	resetExpiresMinutes int
	logger              logger.Interface
	rateLimiter         map[string]time.Time
	rateLimiterMu       sync.Mutex
	lastCleanup         time.Time
}

func NewForgotPasswordUseCase(
	userRepo user.Repository,
	emailService EmailService,
	resetExpiresMinutes int,
	logger logger.Interface,
) *ForgotPasswordUseCase {
	return &ForgotPasswordUseCase{
		userRepo:            userRepo,
		emailService:        emailService,
		resetExpiresMinutes: resetExpiresMinutes,
		logger:              logger,
		rateLimiter:         make(map[string]time.Time),
		lastCleanup:         biztime.NowUTC(),
	}
}

func (uc *ForgotPasswordUseCase) Execute(ctx context.Context, cmd ForgotPasswordCommand) (*ForgotPasswordResult, error) {
	email := trimLower(cmd.Email)

	// The limiter must behave identically for known and unknown addresses,
	// so the attempt is reserved before the account lookup.
	if err := uc.reserveRateLimit(email); err != nil {
		return nil, err
	}

	neutral := &ForgotPasswordResult{Message: neutralResetMessage}

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return neutral, nil
	}
	if existingUser == nil {
		uc.logger.Infow("password reset requested for non-existent email")
		return neutral, nil
	}

	token, err := vo.GenerateResetToken()
	if err != nil {
		uc.logger.Errorw("failed to generate reset token", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate reset token: %w", err)
	}

	expiresAt := biztime.NowUTC().Add(time.Duration(uc.resetExpiresMinutes) * time.Minute)
	existingUser.SetResetToken(token.Hash(), expiresAt)

	if err := uc.userRepo.Update(ctx, existingUser); err != nil {
		uc.logger.Errorw("failed to update user", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	if err := uc.emailService.SendPasswordResetEmail(email, token.Value()); err != nil {
		uc.logger.Warnw("failed to send password reset email", "error", err, "user_id", existingUser.ID())
	}

	uc.logger.Infow("password reset requested", "user_id", existingUser.ID())

	return &ForgotPasswordResult{
		Message:          neutralResetMessage,
		ResetToken:       token.Value(),
		ExpiresInMinutes: uc.resetExpiresMinutes,
	}, nil
}

// reserveRateLimit records the attempt for the submitted email and rejects it
// when the previous one falls inside the window. Every email is recorded,
// whether or not an account exists, so the limiter leaks nothing about
// account existence.
func (uc *ForgotPasswordUseCase) reserveRateLimit(email string) error {
	uc.rateLimiterMu.Lock()
	defer uc.rateLimiterMu.Unlock()

	now := biztime.NowUTC()

	// Periodically cleanup expired entries to prevent memory leak
	if now.Sub(uc.lastCleanup) > rateLimitCleanupInterval {
		uc.cleanupExpiredEntries(now)
		uc.lastCleanup = now
	}

	if lastRequest, exists := uc.rateLimiter[email]; exists {
		if now.Sub(lastRequest) < rateLimitWindow {
			return apperrors.NewBadRequestError("please wait before requesting another password reset")
		}
	}

	uc.rateLimiter[email] = now
	return nil
}

// cleanupExpiredEntries removes entries older than rateLimitCleanupInterval
// Must be called with rateLimiterMu held
func (uc *ForgotPasswordUseCase) cleanupExpiredEntries(now time.Time) {
	for email, lastRequest := range uc.rateLimiter {
		if now.Sub(lastRequest) > rateLimitCleanupInterval {
			delete(uc.rateLimiter, email)
		}
	}
}
