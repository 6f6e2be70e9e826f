package usecases

import (
	"context"

	"helpdesk/internal/application/auth/dto"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type RefreshCommand struct {
	RefreshToken string
}

type RefreshUseCase struct {
	userRepo user.Repository
	issuer   TokenIssuer
	logger   logger.Interface
}

func NewRefreshUseCase(userRepo user.Repository, issuer TokenIssuer, logger logger.Interface) *RefreshUseCase {
	return &RefreshUseCase{
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Execute exchanges a valid refresh token for a new access token. The user is
// re-read so a token issued before a role change carries the current role.
func (uc *RefreshUseCase) Execute(ctx context.Context, cmd RefreshCommand) (*dto.RefreshResult, error) {
	if cmd.RefreshToken == "" {
		return nil, errors.NewValidationError("refresh token is required")
	}

	actor, err := uc.issuer.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	existing, err := uc.userRepo.FindByID(ctx, actor.ID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("Invalid refresh token")
		}
		uc.logger.Errorw("failed to look up user for refresh", "user_id", actor.ID, "error", err)
		return nil, err
	}

	accessToken, err := uc.issuer.GenerateAccess(existing.Actor())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to issue token")
	}

	return &dto.RefreshResult{AccessToken: accessToken}, nil
}
