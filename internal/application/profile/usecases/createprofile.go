package usecases

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"devdesk/internal/application/profile/dto"
	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type CreateProfileCommand struct {
	CallerID  uuid.UUID
	Username  string
	FullName  string
	AvatarURL string
	Role      string
}

type CreateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewCreateProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *CreateProfileUseCase {
	return &CreateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

// Execute creates the caller's profile. The profile ID always equals the
// caller's user ID; a second create for the same account conflicts.
func (uc *CreateProfileUseCase) Execute(ctx context.Context, cmd CreateProfileCommand) (*dto.ProfileDTO, error) {
	exists, err := uc.profileRepo.ExistsByID(ctx, cmd.CallerID)
	if err != nil {
		uc.logger.Errorw("failed to check profile existence", "error", err, "user_id", cmd.CallerID)
		return nil, fmt.Errorf("failed to check profile: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("profile already exists")
	}

	newProfile, err := profile.NewProfile(cmd.CallerID, cmd.Username, cmd.FullName, cmd.AvatarURL, cmd.Role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.profileRepo.Save(ctx, newProfile); err != nil {
		uc.logger.Errorw("failed to save profile", "error", err, "user_id", cmd.CallerID)
		return nil, err
	}

	uc.logger.Infow("profile created successfully", "user_id", cmd.CallerID, "username", cmd.Username)

	return dto.ToProfileDTO(newProfile), nil
}
