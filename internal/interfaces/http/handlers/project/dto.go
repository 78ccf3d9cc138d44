package project

import (
	"github.com/google/uuid"

	"devdesk/internal/application/project/usecases"
)

type CreateProjectRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty"`
}

func (r *CreateProjectRequest) ToCommand(callerID uuid.UUID) usecases.CreateProjectCommand {
	return usecases.CreateProjectCommand{
		CallerID:    callerID,
		Name:        r.Name,
		Description: r.Description,
	}
}

type UpdateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty"`
}

func (r *UpdateProjectRequest) ToCommand(callerID uuid.UUID, projectID uint) usecases.UpdateProjectCommand {
	return usecases.UpdateProjectCommand{
		CallerID:    callerID,
		ProjectID:   projectID,
		Name:        r.Name,
		Description: r.Description,
	}
}
