package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type DeleteProfileCommand struct {
	CallerID  uuid.UUID
	ProfileID uuid.UUID
}

type DeleteProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewDeleteProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *DeleteProfileUseCase {
	return &DeleteProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *DeleteProfileUseCase) Execute(ctx context.Context, cmd DeleteProfileCommand) error {
	// Ownership is checked before touching storage so a foreign target
	// yields Forbidden rather than NotFound.
	if cmd.ProfileID != cmd.CallerID {
		return errors.NewForbiddenError("cannot delete another user's profile")
	}

	if err := uc.profileRepo.Delete(ctx, cmd.ProfileID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete profile", "error", err, "profile_id", cmd.ProfileID)
		}
		return err
	}

	uc.logger.Infow("profile deleted successfully", "profile_id", cmd.ProfileID)
	return nil
}
