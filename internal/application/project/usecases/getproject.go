package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/project/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/shared/logger"
)

type GetProjectQuery struct {
	CallerID  uuid.UUID
	ProjectID uint
}

type GetProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetProjectUseCase(projectRepo project.Repository, logger logger.Interface) *GetProjectUseCase {
	return &GetProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

// Execute fetches a project scoped to the caller. A project owned by
// someone else is indistinguishable from an absent one.
func (uc *GetProjectUseCase) Execute(ctx context.Context, query GetProjectQuery) (*dto.ProjectDTO, error) {
	p, err := uc.projectRepo.GetByIDAndOwner(ctx, query.ProjectID, query.CallerID)
	if err != nil {
		return nil, err
	}

	return dto.ToProjectDTO(p), nil
}
