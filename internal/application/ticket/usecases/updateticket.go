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

type UpdateTicketCommand struct {
	CallerID    uuid.UUID
	TicketID    uint
	Title       *string
	Description *string
	Status      *string
	Priority    *string
	// AssignedTo distinguishes three cases: nil leaves the assignee
	// untouched, an empty string unassigns, a UUID string reassigns.
	AssignedTo *string
}

type UpdateTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*dto.TicketDTO, error) {
	if cmd.Title == nil && cmd.Description == nil && cmd.Status == nil && cmd.Priority == nil && cmd.AssignedTo == nil {
		return nil, errors.NewValidationError("at least one field must be provided")
	}

	existing, err := resolveOwnedTicket(ctx, uc.ticketRepo, uc.projectRepo, cmd.TicketID, cmd.CallerID)
	if err != nil {
		return nil, err
	}

	if cmd.Title != nil {
		if err := existing.UpdateTitle(*cmd.Title); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Description != nil {
		if err := existing.UpdateDescription(*cmd.Description); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Status != nil {
		if err := existing.ChangeStatus(vo.TicketStatus(*cmd.Status)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := existing.ChangePriority(vo.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.AssignedTo != nil {
		if *cmd.AssignedTo == "" {
			existing.Unassign()
		} else {
			assigneeID, err := uuid.Parse(*cmd.AssignedTo)
			if err != nil {
				return nil, errors.NewValidationError("invalid assignee ID")
			}
			if err := existing.Assign(assigneeID); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", cmd.TicketID)

	return dto.ToTicketDTO(existing), nil
}
