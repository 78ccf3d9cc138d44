package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/profile/dto"
	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type UpdateProfileCommand struct {
	CallerID  uuid.UUID
	ProfileID uuid.UUID
	Username  *string
	FullName  *string
	AvatarURL *string
	Role      *string
}

type UpdateProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewUpdateProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileDTO, error) {
	if cmd.Username == nil && cmd.FullName == nil && cmd.AvatarURL == nil && cmd.Role == nil {
		return nil, errors.NewValidationError("at least one field must be provided")
	}

	existing, err := uc.profileRepo.GetByID(ctx, cmd.ProfileID)
	if err != nil {
		return nil, err
	}

	if !existing.BelongsTo(cmd.CallerID) {
		return nil, errors.NewForbiddenError("cannot modify another user's profile")
	}

	if cmd.Username != nil {
		if err := existing.UpdateUsername(*cmd.Username); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.FullName != nil {
		existing.UpdateFullName(*cmd.FullName)
	}
	if cmd.AvatarURL != nil {
		existing.UpdateAvatarURL(*cmd.AvatarURL)
	}
	if cmd.Role != nil {
		existing.UpdateRole(*cmd.Role)
	}

	if err := uc.profileRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "profile_id", cmd.ProfileID)
		return nil, err
	}

	uc.logger.Infow("profile updated successfully", "profile_id", cmd.ProfileID)

	return dto.ToProfileDTO(existing), nil
}
