package mappers

import (
	"devdesk/internal/domain/profile"
	"devdesk/internal/domain/user"
	"devdesk/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between account/profile domain entities
// and persistence models.
type UserMapper interface {
	ToModel(u *user.User) *models.UserModel
	ToDomain(model *models.UserModel) (*user.User, error)
	ProfileToModel(p *profile.Profile) *models.ProfileModel
	ProfileToDomain(model *models.ProfileModel) (*profile.Profile, error)
}

type UserMapperImpl struct{}

func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToModel(u *user.User) *models.UserModel {
	return &models.UserModel{
		ID:           u.ID(),
		Email:        u.Email(),
		PasswordHash: u.PasswordHash(),
		CreatedAt:    u.CreatedAt(),
	}
}

func (m *UserMapperImpl) ToDomain(model *models.UserModel) (*user.User, error) {
	return user.ReconstructUser(
		model.ID,
		model.Email,
		model.PasswordHash,
		model.CreatedAt,
	)
}

func (m *UserMapperImpl) ProfileToModel(p *profile.Profile) *models.ProfileModel {
	return &models.ProfileModel{
		ID:        p.ID(),
		Username:  p.Username(),
		FullName:  p.FullName(),
		AvatarURL: p.AvatarURL(),
		Role:      p.Role(),
		CreatedAt: p.CreatedAt(),
		UpdatedAt: p.UpdatedAt(),
	}
}

func (m *UserMapperImpl) ProfileToDomain(model *models.ProfileModel) (*profile.Profile, error) {
	return profile.ReconstructProfile(
		model.ID,
		model.Username,
		model.FullName,
		model.AvatarURL,
		model.Role,
		model.CreatedAt,
		model.UpdatedAt,
	)
}
