package ticket

import (
	"github.com/google/uuid"

	"devdesk/internal/application/ticket/usecases"
	"devdesk/internal/shared/errors"
)

type CreateTicketRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description string  `json:"description" binding:"required,max=5000"`
	Status      string  `json:"status" binding:"omitempty,ticketstatus"`
	Priority    string  `json:"priority" binding:"omitempty,ticketpriority"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty"`
}

func (r *CreateTicketRequest) ToCommand(callerID uuid.UUID, projectID uint) (usecases.CreateTicketCommand, error) {
	cmd := usecases.CreateTicketCommand{
		CallerID:    callerID,
		ProjectID:   projectID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
	}

	if r.AssignedTo != nil && *r.AssignedTo != "" {
		assigneeID, err := uuid.Parse(*r.AssignedTo)
		if err != nil {
			return cmd, errors.NewValidationError("invalid assignee ID")
		}
		cmd.AssignedTo = &assigneeID
	}

	return cmd, nil
}

type UpdateTicketRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	Description *string `json:"description" binding:"omitempty,max=5000"`
	Status      *string `json:"status" binding:"omitempty,ticketstatus"`
	Priority    *string `json:"priority" binding:"omitempty,ticketpriority"`
	AssignedTo  *string `json:"assigned_to" binding:"omitempty"`
}

func (r *UpdateTicketRequest) ToCommand(callerID uuid.UUID, ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		CallerID:    callerID,
		TicketID:    ticketID,
		Title:       r.Title,
		Description: r.Description,
		Status:      r.Status,
		Priority:    r.Priority,
		AssignedTo:  r.AssignedTo,
	}
}

type AddCommentRequest struct {
	Content string `json:"content" binding:"required,max=10000"`
}

type RecordActivityRequest struct {
	Action  string `json:"action" binding:"required,max=200"`
	Details string `json:"details" binding:"omitempty"`
}
