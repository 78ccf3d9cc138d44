package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	CallerID uuid.UUID
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	t, err := resolveOwnedTicket(ctx, uc.ticketRepo, uc.projectRepo, query.TicketID, query.CallerID)
	if err != nil {
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
