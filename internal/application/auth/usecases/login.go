package usecases

import (
	"context"
	"fmt"

	"devdesk/internal/domain/user"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User   *user.User
	Tokens *TokenPair
}

type LoginUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Identical error for unknown email and wrong password.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if err := existingUser.VerifyPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID().String(), existingUser.ID().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", existingUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in successfully", "user_id", existingUser.ID())

	return &LoginResult{
		User:   existingUser,
		Tokens: tokens,
	}, nil
}
