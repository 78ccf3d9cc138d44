package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type DeleteTicketCommand struct {
	CallerID uuid.UUID
	TicketID uint
}

type DeleteTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) error {
	if _, err := resolveOwnedTicket(ctx, uc.ticketRepo, uc.projectRepo, cmd.TicketID, cmd.CallerID); err != nil {
		return err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		}
		return err
	}

	uc.logger.Infow("ticket deleted successfully", "ticket_id", cmd.TicketID)
	return nil
}
