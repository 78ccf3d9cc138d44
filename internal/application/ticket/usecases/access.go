package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
)

// resolveOwnedTicket loads a ticket and verifies the caller owns its
// project. The ownership check runs through the same owner-scoped query
// as direct project access, so a foreign ticket reads as absent.
func resolveOwnedTicket(
	ctx context.Context,
	tickets ticket.TicketRepository,
	projects project.Repository,
	ticketID uint,
	callerID uuid.UUID,
) (*ticket.Ticket, error) {
	t, err := tickets.GetByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}

	if _, err := projects.GetByIDAndOwner(ctx, t.ProjectID(), callerID); err != nil {
		return nil, err
	}

	return t, nil
}
