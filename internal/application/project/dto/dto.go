package dto

import (
	"time"

	"devdesk/internal/domain/project"
)

type ProjectDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToProjectDTO(p *project.Project) *ProjectDTO {
	if p == nil {
		return nil
	}

	return &ProjectDTO{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		OwnerID:     p.OwnerID().String(),
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
	}
}

func ToProjectDTOs(projects []*project.Project) []*ProjectDTO {
	dtos := make([]*ProjectDTO, 0, len(projects))
	for _, p := range projects {
		dtos = append(dtos, ToProjectDTO(p))
	}
	return dtos
}
