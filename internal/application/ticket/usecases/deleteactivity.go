package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type DeleteActivityCommand struct {
	CallerID   uuid.UUID
	TicketID   uint
	ActivityID uint
}

type DeleteActivityUseCase struct {
	activityRepo ticket.ActivityRepository
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
}

func NewDeleteActivityUseCase(
	activityRepo ticket.ActivityRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteActivityUseCase {
	return &DeleteActivityUseCase{
		activityRepo: activityRepo,
		ticketRepo:   ticketRepo,
		logger:       logger,
	}
}

// Execute deletes an activity entry. Only the ticket's existence is checked
// up front; the actor check is folded into the delete query, matching
// comment deletion.
func (uc *DeleteActivityUseCase) Execute(ctx context.Context, cmd DeleteActivityCommand) error {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	if err := uc.activityRepo.DeleteByIDAndActor(ctx, cmd.ActivityID, cmd.TicketID, cmd.CallerID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete activity", "error", err, "activity_id", cmd.ActivityID)
		}
		return err
	}

	uc.logger.Infow("activity deleted successfully", "activity_id", cmd.ActivityID, "ticket_id", cmd.TicketID)
	return nil
}
