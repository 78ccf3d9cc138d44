package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
	vo "devdesk/internal/domain/ticket/valueobjects"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	CallerID    uuid.UUID
	ProjectID   uint
	Title       string
	Description string
	Status      string
	Priority    string
	AssignedTo  *uuid.UUID
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*dto.TicketDTO, error) {
	if _, err := uc.projectRepo.GetByIDAndOwner(ctx, cmd.ProjectID, cmd.CallerID); err != nil {
		return nil, err
	}

	newTicket, err := ticket.NewTicket(
		cmd.ProjectID,
		cmd.Title,
		cmd.Description,
		vo.TicketStatus(cmd.Status),
		vo.Priority(cmd.Priority),
		cmd.CallerID,
		cmd.AssignedTo,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err, "project_id", cmd.ProjectID)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(),
		"project_id", cmd.ProjectID,
		"created_by", cmd.CallerID)

	return dto.ToTicketDTO(newTicket), nil
}
