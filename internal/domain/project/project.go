package project

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Project struct {
	id          uint
	name        string
	description string
	ownerID     uuid.UUID
	createdAt   time.Time
	updatedAt   time.Time
}

func NewProject(name, description string, ownerID uuid.UUID) (*Project, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner ID is required")
	}

	now := time.Now()

	return &Project{
		name:        name,
		description: description,
		ownerID:     ownerID,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name string,
	description string,
	ownerID uuid.UUID,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if ownerID == uuid.Nil {
		return nil, fmt.Errorf("owner ID is required")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		ownerID:     ownerID,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint             { return p.id }
func (p *Project) Name() string         { return p.name }
func (p *Project) Description() string  { return p.description }
func (p *Project) OwnerID() uuid.UUID   { return p.ownerID }
func (p *Project) CreatedAt() time.Time { return p.createdAt }
func (p *Project) UpdatedAt() time.Time { return p.updatedAt }

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if len(name) > 200 {
		return fmt.Errorf("name exceeds maximum length of 200 characters")
	}
	p.name = name
	p.updatedAt = time.Now()
	return nil
}

func (p *Project) UpdateDescription(description string) {
	p.description = description
	p.updatedAt = time.Now()
}

// IsOwnedBy reports whether the given caller owns this project.
// Every ticket operation authorizes through this chain.
func (p *Project) IsOwnedBy(userID uuid.UUID) bool {
	return p.ownerID == userID
}
