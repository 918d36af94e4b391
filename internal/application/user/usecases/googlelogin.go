package usecases

import (
	"context"
	"errors"
	"fmt"

	"ticketdesk/internal/domain/user"
	vo "ticketdesk/internal/domain/user/valueobjects"
	"ticketdesk/internal/infrastructure/auth"
	"ticketdesk/internal/shared/authorization"
	apperrors "ticketdesk/internal/shared/errors"
	"ticketdesk/internal/shared/logger"
)

// usernameSuffixLimit bounds the collision-resolution loop for derived
// usernames. Past this many taken variants the creation is given up as a
// conflict rather than scanning indefinitely.
const usernameSuffixLimit = 1000

type GoogleLoginCommand struct {
	IDToken string
	AsAdmin bool
}

// GoogleLoginUseCase reconciles a verified external identity with the local
// account store. A matching account logs straight in; an unknown identity
// provisions a fresh user account unless admin access was requested, which is
// strictly limited to pre-existing admin accounts.
type GoogleLoginUseCase struct {
	userRepo       user.Repository
	passwordHasher user.PasswordHasher
	tokenVerifier  GoogleTokenVerifier
	jwtService     JWTService
	logger         logger.Interface
}

func NewGoogleLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	tokenVerifier GoogleTokenVerifier,
	jwtService JWTService,
	logger logger.Interface,
) *GoogleLoginUseCase {
	return &GoogleLoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokenVerifier:  tokenVerifier,
		jwtService:     jwtService,
		logger:         logger,
	}
}

func (uc *GoogleLoginUseCase) Execute(ctx context.Context, cmd GoogleLoginCommand) (*LoginResult, error) {
	identity, err := uc.tokenVerifier.Verify(ctx, cmd.IDToken)
	if err != nil {
		if errors.Is(err, auth.ErrGoogleClientIDNotConfigured) {
			uc.logger.Errorw("google login attempted without configured client ID")
			return nil, apperrors.NewInternalError("GOOGLE_CLIENT_ID is not configured on the server.")
		}
		uc.logger.Warnw("google token verification failed", "error", err)
		return nil, apperrors.NewExternalError("Invalid Google token", err.Error())
	}

	existingUser, err := uc.userRepo.GetByEmail(ctx, identity.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if cmd.AsAdmin {
		// Admin access never provisions accounts; the identity must already
		// map to an admin.
		if existingUser == nil || !existingUser.IsAdmin() {
			return nil, apperrors.NewForbiddenError("This Google account is not mapped to an admin user.")
		}
	} else if existingUser == nil {
		existingUser, err = uc.provisionUser(ctx, identity)
		if err != nil {
			return nil, err
		}
	}

	// Record the asserted subject on every login, including re-binding when it
	// changed upstream.
	if existingUser.BindGoogleSub(identity.Sub) {
		if err := uc.userRepo.Update(ctx, existingUser); err != nil {
			uc.logger.Errorw("failed to persist google sub binding", "user_id", existingUser.ID(), "error", err)
			return nil, fmt.Errorf("failed to update user: %w", err)
		}
	}

	token, err := uc.jwtService.Generate(existingUser.Email().String(), existingUser.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate access token", "error", err)
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	uc.logger.Infow("google login succeeded", "user_id", existingUser.ID())

	return &LoginResult{
		User:        existingUser,
		AccessToken: token,
		ExpiresIn:   int64(uc.jwtService.AccessExpMinutes()) * 60,
	}, nil
}

// provisionUser creates a local account for a first-time federated login. The
// username is derived from the email local part, disambiguated with a numeric
// suffix, and the account gets an unguessable random password so password
// login stays possible only after a reset.
func (uc *GoogleLoginUseCase) provisionUser(ctx context.Context, identity *auth.GoogleIdentity) (*user.User, error) {
	email, err := vo.NewEmail(identity.Email)
	if err != nil {
		return nil, apperrors.NewExternalError("Invalid Google token", err.Error())
	}

	username, err := uc.pickUsername(ctx, email)
	if err != nil {
		return nil, err
	}

	randomPassword, err := auth.GenerateRandomPassword()
	if err != nil {
		uc.logger.Errorw("failed to generate random password", "error", err)
		return nil, fmt.Errorf("failed to generate password: %w", err)
	}

	passwordHash, err := uc.passwordHasher.Hash(randomPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(username, email, passwordHash, authorization.RoleUser)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	newUser.BindGoogleSub(identity.Sub)

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if apperrors.IsConflictError(err) {
			// A concurrent first login for the same identity won the race.
			racedUser, getErr := uc.userRepo.GetByEmail(ctx, email.String())
			if getErr == nil && racedUser != nil {
				return racedUser, nil
			}
			return nil, apperrors.NewConflictError(duplicateAccountMessage)
		}
		uc.logger.Errorw("failed to provision user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user provisioned from google login", "user_id", newUser.ID(), "username", username)
	return newUser, nil
}

// pickUsername resolves derived-username collisions: base, base2, base3, ...
func (uc *GoogleLoginUseCase) pickUsername(ctx context.Context, email *vo.Email) (string, error) {
	base := vo.DeriveUsername(email)
	candidate := base

	for suffix := 2; suffix <= usernameSuffixLimit; suffix++ {
		taken, err := uc.userRepo.UsernameExists(ctx, candidate)
		if err != nil {
			uc.logger.Errorw("failed to check username existence", "error", err)
			return "", fmt.Errorf("failed to check username: %w", err)
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s%d", base, suffix)
	}

	return "", apperrors.NewConflictError(duplicateAccountMessage)
}
