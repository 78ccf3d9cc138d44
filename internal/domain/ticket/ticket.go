package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	vo "devdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id          uint
	projectID   uint
	title       string
	description string
	status      vo.TicketStatus
	priority    vo.Priority
	createdBy   uuid.UUID
	assignedTo  *uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTicket(
	projectID uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdBy uuid.UUID,
	assignedTo *uuid.UUID,
) (*Ticket, error) {
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	if status == "" {
		status = vo.DefaultStatus
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if priority == "" {
		priority = vo.DefaultPriority
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if createdBy == uuid.Nil {
		return nil, fmt.Errorf("creator ID is required")
	}

	now := time.Now()

	return &Ticket{
		projectID:   projectID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	projectID uint,
	title string,
	description string,
	status vo.TicketStatus,
	priority vo.Priority,
	createdBy uuid.UUID,
	assignedTo *uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if projectID == 0 {
		return nil, fmt.Errorf("project ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	return &Ticket{
		id:          id,
		projectID:   projectID,
		title:       title,
		description: description,
		status:      status,
		priority:    priority,
		createdBy:   createdBy,
		assignedTo:  assignedTo,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Ticket) ID() uint               { return t.id }
func (t *Ticket) ProjectID() uint        { return t.projectID }
func (t *Ticket) Title() string          { return t.title }
func (t *Ticket) Description() string    { return t.description }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) Priority() vo.Priority  { return t.priority }
func (t *Ticket) CreatedBy() uuid.UUID   { return t.createdBy }
func (t *Ticket) AssignedTo() *uuid.UUID { return t.assignedTo }
func (t *Ticket) CreatedAt() time.Time   { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time   { return t.updatedAt }

// SetID assigns the storage-generated identifier after the first save.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Ticket) UpdateTitle(title string) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	t.title = title
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return fmt.Errorf("description exceeds maximum length of 5000 characters")
	}
	t.description = description
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangeStatus(status vo.TicketStatus) error {
	if !status.IsValid() {
		return fmt.Errorf("invalid status: %s", status)
	}
	t.status = status
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) ChangePriority(priority vo.Priority) error {
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", priority)
	}
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Assign(assigneeID uuid.UUID) error {
	if assigneeID == uuid.Nil {
		return fmt.Errorf("assignee ID is required")
	}
	t.assignedTo = &assigneeID
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) Unassign() {
	t.assignedTo = nil
	t.updatedAt = time.Now()
}
