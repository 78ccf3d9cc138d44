package profile

import (
	"github.com/google/uuid"

	"devdesk/internal/application/profile/usecases"
)

type CreateProfileRequest struct {
	Username  string `json:"username" binding:"required,max=50"`
	FullName  string `json:"full_name" binding:"omitempty,max=200"`
	AvatarURL string `json:"avatar_url" binding:"omitempty,max=500"`
	Role      string `json:"role" binding:"omitempty,max=50"`
}

func (r *CreateProfileRequest) ToCommand(callerID uuid.UUID) usecases.CreateProfileCommand {
	return usecases.CreateProfileCommand{
		CallerID:  callerID,
		Username:  r.Username,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		Role:      r.Role,
	}
}

type UpdateProfileRequest struct {
	Username  *string `json:"username" binding:"omitempty,max=50"`
	FullName  *string `json:"full_name" binding:"omitempty,max=200"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
	Role      *string `json:"role" binding:"omitempty,max=50"`
}

func (r *UpdateProfileRequest) ToCommand(callerID, profileID uuid.UUID) usecases.UpdateProfileCommand {
	return usecases.UpdateProfileCommand{
		CallerID:  callerID,
		ProfileID: profileID,
		Username:  r.Username,
		FullName:  r.FullName,
		AvatarURL: r.AvatarURL,
		Role:      r.Role,
	}
}
