package dto

import (
	"time"

	"devdesk/internal/domain/profile"
)

type ProfileDTO struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	AvatarURL string    `json:"avatar_url"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToProfileDTO(p *profile.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}

	return &ProfileDTO{
		ID:        p.ID().String(),
		Username:  p.Username(),
		FullName:  p.FullName(),
		AvatarURL: p.AvatarURL(),
		Role:      p.Role(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func ToProfileDTOs(profiles []*profile.Profile) []*ProfileDTO {
	dtos := make([]*ProfileDTO, 0, len(profiles))
	for _, p := range profiles {
		dtos = append(dtos, ToProfileDTO(p))
	}
	return dtos
}
