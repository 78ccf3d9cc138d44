package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/application/ticket/dto"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/logger"
)

type ListCommentsQuery struct {
	CallerID uuid.UUID
	TicketID uint
	// AuthorOnly restricts the list to comments written by the caller.
	AuthorOnly bool
}

type ListCommentsUseCase struct {
	commentRepo ticket.CommentRepository
	ticketRepo  ticket.TicketRepository
	logger      logger.Interface
}

func NewListCommentsUseCase(
	commentRepo ticket.CommentRepository,
	ticketRepo ticket.TicketRepository,
	logger logger.Interface,
) *ListCommentsUseCase {
	return &ListCommentsUseCase{
		commentRepo: commentRepo,
		ticketRepo:  ticketRepo,
		logger:      logger,
	}
}

// Execute lists comments for any authenticated caller holding the ticket id.
func (uc *ListCommentsUseCase) Execute(ctx context.Context, query ListCommentsQuery) ([]*dto.CommentDTO, error) {
	if _, err := uc.ticketRepo.GetByID(ctx, query.TicketID); err != nil {
		return nil, err
	}

	var (
		comments []*ticket.Comment
		err      error
	)
	if query.AuthorOnly {
		comments, err = uc.commentRepo.ListByTicketAndAuthor(ctx, query.TicketID, query.CallerID)
	} else {
		comments, err = uc.commentRepo.ListByTicket(ctx, query.TicketID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list comments", "error", err, "ticket_id", query.TicketID)
		return nil, err
	}

	return dto.ToCommentDTOs(comments), nil
}
