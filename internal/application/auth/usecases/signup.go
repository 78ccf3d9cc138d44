package usecases

import (
	"context"
	"fmt"

	"devdesk/internal/domain/user"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

// TokenPair carries the issued credentials for a session.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// JWTService issues token pairs for authenticated sessions.
type JWTService interface {
	Generate(userID string, sessionID string) (*TokenPair, error)
}

type SignupCommand struct {
	Email    string
	Password string
}

type SignupResult struct {
	User   *user.User
	Tokens *TokenPair
}

type SignupUseCase struct {
	userRepo   user.Repository
	hasher     user.PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewSignupUseCase(
	userRepo user.Repository,
	hasher user.PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, cmd.Email)
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("email already registered")
	}

	newUser, err := user.NewUser(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := newUser.SetPassword(cmd.Password, uc.hasher); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, err
	}

	tokens, err := uc.jwtService.Generate(newUser.ID().String(), newUser.ID().String())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err, "user_id", newUser.ID())
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user signed up successfully", "user_id", newUser.ID())

	return &SignupResult{
		User:   newUser,
		Tokens: tokens,
	}, nil
}
