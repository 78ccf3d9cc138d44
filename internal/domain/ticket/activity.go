package ticket

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Activity records an action taken on a ticket (status change, comment,
// assignment). Entries are append-only; only the actor may delete one.
type Activity struct {
	id        uint
	ticketID  uint
	actorID   uuid.UUID
	action    string
	details   string
	createdAt time.Time
}

func NewActivity(ticketID uint, actorID uuid.UUID, action, details string) (*Activity, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if actorID == uuid.Nil {
		return nil, fmt.Errorf("actor ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}
	if len(action) > 200 {
		return nil, fmt.Errorf("action exceeds maximum length of 200 characters")
	}

	return &Activity{
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		details:   details,
		createdAt: time.Now(),
	}, nil
}

func ReconstructActivity(
	id uint,
	ticketID uint,
	actorID uuid.UUID,
	action string,
	details string,
	createdAt time.Time,
) (*Activity, error) {
	if id == 0 {
		return nil, fmt.Errorf("activity ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(action) == 0 {
		return nil, fmt.Errorf("action is required")
	}

	return &Activity{
		id:        id,
		ticketID:  ticketID,
		actorID:   actorID,
		action:    action,
		details:   details,
		createdAt: createdAt,
	}, nil
}

func (a *Activity) ID() uint             { return a.id }
func (a *Activity) TicketID() uint       { return a.ticketID }
func (a *Activity) ActorID() uuid.UUID   { return a.actorID }
func (a *Activity) Action() string       { return a.action }
func (a *Activity) Details() string      { return a.details }
func (a *Activity) CreatedAt() time.Time { return a.createdAt }

func (a *Activity) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("activity ID already set")
	}
	if id == 0 {
		return fmt.Errorf("activity ID cannot be zero")
	}
	a.id = id
	return nil
}

// IsRecordedBy reports whether the given caller recorded this activity.
func (a *Activity) IsRecordedBy(userID uuid.UUID) bool {
	return a.actorID == userID
}
