package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	CallerID  uuid.UUID
	ProjectID uint
}

type ListTicketsUseCase struct {
	ticketRepo  ticket.TicketRepository
	projectRepo project.Repository
	logger      logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.TicketRepository,
	projectRepo project.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo:  ticketRepo,
		projectRepo: projectRepo,
		logger:      logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) ([]*dto.TicketDTO, error) {
	if _, err := uc.projectRepo.GetByIDAndOwner(ctx, query.ProjectID, query.CallerID); err != nil {
		return nil, err
	}

	tickets, err := uc.ticketRepo.ListByProject(ctx, query.ProjectID)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err, "project_id", query.ProjectID)
		return nil, err
	}

	return dto.ToTicketDTOs(tickets), nil
}
