package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/project"
	"devdesk/internal/domain/ticket"
	"devdesk/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc          func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc        func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc        func(ctx context.Context, ticketID uint) error
	GetByIDFunc       func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListByProjectFunc func(ctx context.Context, projectID uint) ([]*ticket.Ticket, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListByProject(ctx context.Context, projectID uint) ([]*ticket.Ticket, error) {
	if m.ListByProjectFunc != nil {
		return m.ListByProjectFunc(ctx, projectID)
	}
	return nil, nil
}

type mockCommentRepository struct {
	SaveFunc                  func(ctx context.Context, c *ticket.Comment) error
	ListByTicketFunc          func(ctx context.Context, ticketID uint) ([]*ticket.Comment, error)
	ListByTicketAndAuthorFunc func(ctx context.Context, ticketID uint, authorID uuid.UUID) ([]*ticket.Comment, error)
	DeleteByIDAndAuthorFunc   func(ctx context.Context, commentID, ticketID uint, authorID uuid.UUID) error
}

func (m *mockCommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, c)
	}
	return nil
}

func (m *mockCommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockCommentRepository) ListByTicketAndAuthor(ctx context.Context, ticketID uint, authorID uuid.UUID) ([]*ticket.Comment, error) {
	if m.ListByTicketAndAuthorFunc != nil {
		return m.ListByTicketAndAuthorFunc(ctx, ticketID, authorID)
	}
	return nil, nil
}

func (m *mockCommentRepository) DeleteByIDAndAuthor(ctx context.Context, commentID, ticketID uint, authorID uuid.UUID) error {
	if m.DeleteByIDAndAuthorFunc != nil {
		return m.DeleteByIDAndAuthorFunc(ctx, commentID, ticketID, authorID)
	}
	return nil
}

type mockActivityRepository struct {
	SaveFunc                 func(ctx context.Context, a *ticket.Activity) error
	ListByTicketFunc         func(ctx context.Context, ticketID uint) ([]*ticket.Activity, error)
	ListByTicketAndActorFunc func(ctx context.Context, ticketID uint, actorID uuid.UUID) ([]*ticket.Activity, error)
	DeleteByIDAndActorFunc   func(ctx context.Context, activityID, ticketID uint, actorID uuid.UUID) error
}

func (m *mockActivityRepository) Save(ctx context.Context, a *ticket.Activity) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockActivityRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Activity, error) {
	if m.ListByTicketFunc != nil {
		return m.ListByTicketFunc(ctx, ticketID)
	}
	return nil, nil
}

func (m *mockActivityRepository) ListByTicketAndActor(ctx context.Context, ticketID uint, actorID uuid.UUID) ([]*ticket.Activity, error) {
	if m.ListByTicketAndActorFunc != nil {
		return m.ListByTicketAndActorFunc(ctx, ticketID, actorID)
	}
	return nil, nil
}

func (m *mockActivityRepository) DeleteByIDAndActor(ctx context.Context, activityID, ticketID uint, actorID uuid.UUID) error {
	if m.DeleteByIDAndActorFunc != nil {
		return m.DeleteByIDAndActorFunc(ctx, activityID, ticketID, actorID)
	}
	return nil
}

type mockProjectRepository struct {
	SaveFunc            func(ctx context.Context, p *project.Project) error
	UpdateFunc          func(ctx context.Context, p *project.Project) error
	DeleteFunc          func(ctx context.Context, projectID uint, ownerID uuid.UUID) error
	GetByIDAndOwnerFunc func(ctx context.Context, projectID uint, ownerID uuid.UUID) (*project.Project, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID uint, ownerID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, projectID, ownerID)
	}
	return nil
}

func (m *mockProjectRepository) GetByIDAndOwner(ctx context.Context, projectID uint, ownerID uuid.UUID) (*project.Project, error) {
	if m.GetByIDAndOwnerFunc != nil {
		return m.GetByIDAndOwnerFunc(ctx, projectID, ownerID)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
