package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/project"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type DeleteProjectCommand struct {
	CallerID  uuid.UUID
	ProjectID uint
}

type DeleteProjectUseCase struct {
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteProjectUseCase(projectRepo project.Repository, logger logger.Interface) *DeleteProjectUseCase {
	return &DeleteProjectUseCase{
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *DeleteProjectUseCase) Execute(ctx context.Context, cmd DeleteProjectCommand) error {
	if err := uc.projectRepo.Delete(ctx, cmd.ProjectID, cmd.CallerID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete project", "error", err, "project_id", cmd.ProjectID)
		}
		return err
	}

	uc.logger.Infow("project deleted successfully", "project_id", cmd.ProjectID)
	return nil
}
