package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/project/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type CreateProjectCommand struct {
	CallerID    uuid.UUID
	Name        string
	Description string
}

type CreateProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateProjectUseCase(projectRepo project.Repository, logger logger.Interface) *CreateProjectUseCase {
	return &CreateProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateProjectUseCase) Execute(ctx context.Context, cmd CreateProjectCommand) (*dto.ProjectDTO, error) {
	newProject, err := project.NewProject(cmd.Name, cmd.Description, cmd.CallerID)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.projectRepo.Save(ctx, newProject); err != nil {
		uc.logger.Errorw("failed to save project", "error", err, "owner_id", cmd.CallerID)
		return nil, err
	}

	uc.logger.Infow("project created successfully", "project_id", newProject.ID(), "owner_id", cmd.CallerID)

	return dto.ToProjectDTO(newProject), nil
}
