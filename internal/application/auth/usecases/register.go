// Package usecases implements the authentication operations.
package usecases

import (
	"context"
	"strings"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

const minPasswordLength = 6

type RegisterCommand struct {
	Email    string
	Password string
	// Role defaults to "user" when empty.
	Role string
}

type RegisterUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*dto.AuthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to process password")
	}

	// validateCommand has already rejected unknown roles.
	role, _ := user.NewRole(cmd.Role)
	newUser, err := user.NewUser(cmd.Email, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	// The unique index on email is the real guard; the repository maps a
	// duplicate-key violation to a conflict error.
	if err := uc.userRepo.Save(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Infow("registration rejected, email taken", "email", newUser.Email())
		} else {
			uc.logger.Errorw("failed to save user", "error", err)
		}
		return nil, err
	}

	tokens, err := uc.issuer.Generate(newUser.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", newUser.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to issue tokens")
	}

	uc.logger.Infow("user registered", "user_id", newUser.ID(), "email", newUser.Email())

	return &dto.AuthResult{
		User:         userView(newUser),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}

func (uc *RegisterUseCase) validateCommand(cmd RegisterCommand) error {
	email := strings.TrimSpace(cmd.Email)
	if email == "" {
		return errors.NewValidationError("email is required")
	}
	if !strings.Contains(email, "@") {
		return errors.NewValidationError("email is invalid")
	}
	if len(cmd.Password) < minPasswordLength {
		return errors.NewValidationError("password must be at least 6 characters")
	}
	if cmd.Role != "" && !user.Role(cmd.Role).IsValid() {
		return errors.NewValidationError("invalid role")
	}
	return nil
}

func userView(u *user.User) dto.UserView {
	return dto.UserView{
		ID:        u.ID(),
		Email:     u.Email(),
		Role:      u.Role().String(),
		CreatedAt: u.CreatedAt(),
	}
}
