package ticket

import (
	"context"

	"github.com/google/uuid"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	ListByProject(ctx context.Context, projectID uint) ([]*Ticket, error)
}

type CommentRepository interface {
	Save(ctx context.Context, comment *Comment) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Comment, error)
	ListByTicketAndAuthor(ctx context.Context, ticketID uint, authorID uuid.UUID) ([]*Comment, error)
	// DeleteByIDAndAuthor removes a comment only when ticket and author match.
	// Returns a not-found error when no row satisfies all three filters.
	DeleteByIDAndAuthor(ctx context.Context, commentID, ticketID uint, authorID uuid.UUID) error
}

type ActivityRepository interface {
	Save(ctx context.Context, activity *Activity) error
	ListByTicket(ctx context.Context, ticketID uint) ([]*Activity, error)
	ListByTicketAndActor(ctx context.Context, ticketID uint, actorID uuid.UUID) ([]*Activity, error)
	// DeleteByIDAndActor removes an activity only when ticket and actor match.
	DeleteByIDAndActor(ctx context.Context, activityID, ticketID uint, actorID uuid.UUID) error
}
