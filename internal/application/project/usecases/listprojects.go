package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/project/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/shared/logger"
)

type ListProjectsQuery struct {
	CallerID uuid.UUID
}

type ListProjectsUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListProjectsUseCase(projectRepo project.Repository, logger logger.Interface) *ListProjectsUseCase {
	return &ListProjectsUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListProjectsUseCase) Execute(ctx context.Context, query ListProjectsQuery) ([]*dto.ProjectDTO, error) {
	projects, err := uc.projectRepo.ListByOwner(ctx, query.CallerID)
	if err != nil {
		uc.logger.Errorw("failed to list projects", "error", err, "owner_id", query.CallerID)
		return nil, err
	}

	return dto.ToProjectDTOs(projects), nil
}
