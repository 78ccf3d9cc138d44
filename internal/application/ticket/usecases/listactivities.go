package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/logger"
)

type ListActivitiesQuery struct {
	CallerID uuid.UUID
	TicketID uint
	// ActorOnly restricts the list to entries recorded by the caller.
	ActorOnly bool
}

type ListActivitiesUseCase struct {
	activityRepo ticket.ActivityRepository
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
}

func NewListActivitiesUseCase(
	activityRepo ticket.ActivityRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListActivitiesUseCase {
	return &ListActivitiesUseCase{
		activityRepo: activityRepo,
		ticketRepo:   ticketRepo,
		logger:       logger,
	}
}

// Execute lists activity for any authenticated caller holding the ticket id.
func (uc *ListActivitiesUseCase) Execute(ctx context.Context, query ListActivitiesQuery) ([]*dto.ActivityDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, err
	}

	var (
		activities []*ticket.Activity
		err        error
	)
	if query.ActorOnly {
		activities, err = uc.activityRepo.ListByTicketAndActor(ctx, query.TicketID, query.CallerID)
	} else {
		activities, err = uc.activityRepo.ListByTicket(ctx, query.TicketID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list activities", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	return dto.ToActivityDTOs(activities), nil
}
