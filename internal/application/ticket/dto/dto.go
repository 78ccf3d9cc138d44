package dto

import (
	"time"

	"devdesk/internal/domain/ticket"
)

type TicketDTO struct {
	ID          uint      `json:"id"`
	ProjectID   uint      `json:"project_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	Priority    string    `json:"priority"`
	CreatedBy   string    `json:"created_by"`
	AssignedTo  *string   `json:"assigned_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CommentDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type ActivityDTO struct {
	ID        uint      `json:"id"`
	TicketID  uint      `json:"ticket_id"`
	ActorID   string    `json:"actor_id"`
	Action    string    `json:"action"`
	Details   string    `json:"details"`
	CreatedAt time.Time `json:"created_at"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	var assignedTo *string
	if t.AssignedTo() != nil {
		s := t.AssignedTo().String()
		assignedTo = &s
	}

	return &TicketDTO{
		ID:          t.ID(),
		ProjectID:   t.ProjectID(),
		Title:       t.Title(),
		Description: t.Description(),
		Status:      t.Status().String(),
		Priority:    t.Priority().String(),
		CreatedBy:   t.CreatedBy().String(),
		AssignedTo:  assignedTo,
		CreatedAt:   t.CreatedAt(),
		UpdatedAt:   t.UpdatedAt(),
	}
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	dtos := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		dtos = append(dtos, ToTicketDTO(t))
	}
	return dtos
}

func ToCommentDTO(c *ticket.Comment) *CommentDTO {
	if c == nil {
		return nil
	}

	return &CommentDTO{
		ID:        c.ID(),
		TicketID:  c.TicketID(),
		AuthorID:  c.AuthorID().String(),
		Content:   c.Content(),
		CreatedAt: c.CreatedAt(),
	}
}

func ToCommentDTOs(comments []*ticket.Comment) []*CommentDTO {
	dtos := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		dtos = append(dtos, ToCommentDTO(c))
	}
	return dtos
}

func ToActivityDTO(a *ticket.Activity) *ActivityDTO {
	if a == nil {
		return nil
	}

	return &ActivityDTO{
		ID:        a.ID(),
		TicketID:  a.TicketID(),
		ActorID:   a.ActorID().String(),
		Action:    a.Action(),
		Details:   a.Details(),
		CreatedAt: a.CreatedAt(),
	}
}

func ToActivityDTOs(activities []*ticket.Activity) []*ActivityDTO {
	dtos := make([]*ActivityDTO, 0, len(activities))
	for _, a := range activities {
		dtos = append(dtos, ToActivityDTO(a))
	}
	return dtos
}
