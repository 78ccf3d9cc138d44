package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
)

type DeleteCommentCommand struct {
	CallerID  uuid.UUID
	TicketID  uint
	CommentID uint
}

type DeleteCommentUseCase struct {
	commentRepo ticket.CommentRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewDeleteCommentUseCase(
	commentRepo ticket.CommentRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute deletes a comment. Only the ticket's existence is checked up
// front; authorship is folded into the delete query, so a comment written
// by someone else reads as absent.
func (uc *DeleteCommentUseCase) Execute(ctx context.Context, cmd DeleteCommentCommand) error {
	if _, err := uc.ticketRepo.GetByID(ctx, cmd.TicketID); err != nil {
		return err
	}

	if err := uc.commentRepo.DeleteByIDAndAuthor(ctx, cmd.CommentID, cmd.TicketID, cmd.CallerID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete comment", "error", err, "comment_id", cmd.CommentID)
		}
		return err
	}

	uc.logger.Infow("comment deleted successfully", "comment_id", cmd.CommentID, "ticket_id", cmd.TicketID)
	return nil
}
