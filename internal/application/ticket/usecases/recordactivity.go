package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type RecordActivityCommand struct {
	CallerID uuid.UUID
	TicketID uint
	Action   string
	Details  string
}

type RecordActivityUseCase struct {
	activityRepo ticket.ActivityRepository
	ticketRepo   ticket.TicketRepository
	logger       logger.Interface
}

func NewRecordActivityUseCase(
	activityRepo ticket.ActivityRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *RecordActivityUseCase {
	return &RecordActivityUseCase{
		activityRepo: activityRepo,
		ticketRepo:   ticketRepo,
		logger:       logger,
	}
}

// Execute records an activity entry. Any authenticated caller may record
// against an existing ticket; project ownership is not consulted.
func (uc *RecordActivityUseCase) Execute(ctx context.Context, cmd RecordActivityCommand) (*dto.ActivityDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	newActivity, err := ticket.NewActivity(cmd.TicketID, cmd.CallerID, cmd.Action, cmd.Details)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.activityRepo.Save(ctx, newActivity); err != nil {
		uc.logger.Errorw("failed to save activity", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("activity recorded successfully",
		"activity_id", newActivity.ID(),
		"ticket_id", cmd.TicketID,
		"actor_id", cmd.CallerID)

	return dto.ToActivityDTO(newActivity), nil
}
