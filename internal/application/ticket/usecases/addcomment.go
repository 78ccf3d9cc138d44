package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	CallerID uuid.UUID
	TicketID uint
	Content  string
}

type AddCommentUseCase struct {
	commentRepo ticket.CommentRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewAddCommentUseCase(
	commentRepo ticket.CommentRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute adds a comment. Any authenticated caller may comment; only
// ticket existence is checked, never project ownership.
func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*dto.CommentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	newComment, err := ticket.NewComment(cmd.TicketID, cmd.CallerID, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.commentRepo.Save(ctx, newComment); err != nil {
		uc.logger.Errorw("failed to save comment", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("comment added successfully",
		"comment_id", newComment.ID(),
		"ticket_id", cmd.TicketID,
		"author_id", cmd.CallerID)

	return dto.ToCommentDTO(newComment), nil
}
