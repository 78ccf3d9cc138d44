package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/project/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type UpdateProjectCommand struct {
	CallerID    uuid.UUID
	ProjectID   uint
	Name        string
	Description *string
}

type UpdateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *UpdateProjectUseCase {
	return &UpdateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateProjectUseCase) Execute(ctx context.Context, cmd UpdateProjectCommand) (*dto.ProjectDTO, error) {
	existing, err := uc.projectRepo.GetByIDAndOwner(ctx, cmd.ProjectID, cmd.CallerID)
	if err != nil {
		return nil, err
	}

	if err := existing.Rename(cmd.Name); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.Description != nil {
		existing.UpdateDescription(*cmd.Description)
	}

	if err := uc.projectRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update project", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	uc.logger.Infow("project updated successfully", "project_id", cmd.ProjectID)

	return dto.ToProjectDTO(existing), nil
}
