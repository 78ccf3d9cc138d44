package models

import (
	"time"

	"github.com/google/uuid"
)

type TicketModel struct {
	ID          uint       `gorm:"primaryKey"`
	ProjectID   uint       `gorm:"not null;index"`
	Title       string     `gorm:"size:200;not null"`
	Description string     `gorm:"type:text;not null"`
	Status      string     `gorm:"size:20;not null;index"`
	Priority    string     `gorm:"size:20;not null;index"`
	CreatedBy   uuid.UUID  `gorm:"type:uuid;not null;index"`
	AssignedTo  *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt   time.Time  `gorm:"not null"`
	UpdatedAt   time.Time  `gorm:"not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	AuthorID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}

type ActivityModel struct {
	ID        uint      `gorm:"primaryKey"`
	TicketID  uint      `gorm:"not null;index"`
	ActorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Action    string    `gorm:"size:200;not null"`
	Details   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (ActivityModel) TableName() string {
	return "ticket_activity"
}
