package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/profile/dto"
	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/logger"
)

type GetProfileQuery struct {
	ProfileID uuid.UUID
}

type GetProfileUseCase struct {
	profileRepo profile.Repository
	logger      logger.Interface
}

func NewGetProfileUseCase(profileRepo profile.Repository, logger logger.Interface) *GetProfileUseCase {
	return &GetProfileUseCase{
		profileRepo: profileRepo,
		logger:      logger,
	}
}

func (uc *GetProfileUseCase) Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error) {
	p, err := uc.profileRepo.GetByID(ctx, query.ProfileID)
	if err != nil {
		return nil, err
	}

	return dto.ToProfileDTO(p), nil
}
