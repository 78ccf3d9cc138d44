package mappers

import (
	"devdesk/internal/domain/ticket"
	vo "devdesk/internal/domain/ticket/valueobjects"
	"devdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	CommentToModel(c *ticket.Comment) *models.CommentModel
	CommentToDomain(model *models.CommentModel) (*ticket.Comment, error)
	ActivityToModel(a *ticket.Activity) *models.ActivityModel
	ActivityToDomain(model *models.ActivityModel) (*ticket.Activity, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedBy:   t.CreatedBy(),
		AssignedTo:  t.AssignedTo(),
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.ProjectID,
		model.Title,
		model.Description,
		vo.TicketStatus(model.Status),
		vo.Priority(model.Priority),
		model.CreatedBy,
		model.AssignedTo,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) CommentToModel(c *ticket.Comment) *models.CommentModel {
	return &models.CommentModel{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func (m *TicketMapperImpl) CommentToDomain(model *models.CommentModel) (*ticket.Comment, error) {
	return ticket.ReconstructComment(
		model.ID,
		model.TicketID,
		model.AuthorID,
		model.Content,
		model.CreatedAt,
	)
}

func (m *TicketMapperImpl) ActivityToModel(a *ticket.Activity) *models.ActivityModel {
	return &models.ActivityModel{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		ActorID:   a.ActorID(),
		Action:    a.Action(),
		Details:   a.Details(),
		CreatedAt: a.CreatedAt(),
	}
}

func (m *TicketMapperImpl) ActivityToDomain(model *models.ActivityModel) (*ticket.Activity, error) {
	return ticket.ReconstructActivity(
		model.ID,
		model.TicketID,
		model.ActorID,
		model.Action,
		model.Details,
		model.CreatedAt,
	)
}
