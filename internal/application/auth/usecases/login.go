package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	issuer TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		issuer:   issuer,
		logger:   logger,
	}
}

// Execute authenticates an email/password pair. An unknown email and a wrong
// password produce the same error so callers cannot probe which emails exist.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*dto.AuthResult, error) {
	if cmd.Email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	existing, err := uc.userRepo.FindByEmail(ctx, cmd.Email)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("Invalid credentials")
		}
		uc.logger.Errorw("failed to look up user for login", "error", err)
		return nil, err
	}

	if err := uc.hasher.Verify(existing.PasswordHash(), cmd.Password); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid credentials")
	}

	tokens, err := uc.issuer.Generate(existing.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue tokens", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to issue tokens")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID())

	return &dto.AuthResult{
		User:         userView(existing),
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
