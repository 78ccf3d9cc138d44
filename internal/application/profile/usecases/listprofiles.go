package usecases

import (
	"context"

	"devdesk/internal/application/profile/dto"
	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/logger"
)

type ListProfilesUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewListProfilesUseCase(profileRepo profile.Repository, logger logger.Interface) *ListProfilesUseCase {
	return &ListProfilesUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *ListProfilesUseCase) Execute(ctx context.Context) ([]*dto.ProfileDTO, error) {
	profiles, err := uc.profileRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list profiles", "error", err)
		return nil, err
	}

	return dto.ToProfileDTOs(profiles), nil
}
