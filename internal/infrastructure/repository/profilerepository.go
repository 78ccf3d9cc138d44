package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devdesk/internal/domain/profile"
	"devdesk/internal/infrastructure/persistence/mappers"
	"devdesk/internal/infrastructure/persistence/models"
	apperrors "devdesk/internal/shared/errors"
)

type ProfileRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
	}
}

func (r *ProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ProfileToModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return apperrors.NewConflictError("profile already exists")
		}
		return fmt.Errorf("failed to save profile: %w", err)
	}

	return nil
}

func (r *ProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	model := r.mapper.ProfileToModel(p)

	result := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"username":   model.Username,
			"full_name":  model.FullName,
			"avatar_url": model.AvatarURL,
			"role":       model.Role,
			"updated_at": model.UpdatedAt,
		})

	if result.Error != nil {
		if apperrors.IsDuplicateError(result.Error) {
			return apperrors.NewConflictError("username already taken")
		}
		return fmt.Errorf("failed to update profile: %w", result.Error)
	}

	return nil
}

func (r *ProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", profileID).
		Delete(&models.ProfileModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("profile not found")
	}

	return nil
}

func (r *ProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*profile.Profile, error) {
	var model models.ProfileModel

	if err := r.db.WithContext(ctx).
		Where("id = ?", profileID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("profile not found")
		}
		return nil, fmt.Errorf("failed to find profile: %w", err)
	}

	return r.mapper.ProfileToDomain(&model)
}

func (r *ProfileRepository) ExistsByID(ctx context.Context, profileID uuid.UUID) (bool, error) {
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&models.ProfileModel{}).
		Where("id = ?", profileID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}

	return count > 0, nil
}

func (r *ProfileRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	var profileModels []models.ProfileModel

	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&profileModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}

	profiles := make([]*profile.Profile, 0, len(profileModels))
	for i := range profileModels {
		p, err := r.mapper.ProfileToDomain(&profileModels[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
