package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"devdesk/internal/domain/ticket"
	"devdesk/internal/infrastructure/persistence/mappers"
	"devdesk/internal/infrastructure/persistence/models"
	apperrors "devdesk/internal/shared/errors"
)

type ActivityRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ActivityRepository) Save(ctx context.Context, a *ticket.Activity) error {
	model := r.mapper.ActivityToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}

	return a.SetID(model.ID)
}

func (r *ActivityRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Activity, error) {
	var activityModels []models.ActivityModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return r.toDomainList(activityModels)
}

func (r *ActivityRepository) ListByTicketAndActor(ctx context.Context, ticketID uint, actorID uuid.UUID) ([]*ticket.Activity, error) {
	var activityModels []models.ActivityModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ? AND actor_id = ?", ticketID, actorID).
		Order("created_at ASC").
		Find(&activityModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}

	return r.toDomainList(activityModels)
}

func (r *ActivityRepository) DeleteByIDAndActor(ctx context.Context, activityID, ticketID uint, actorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND ticket_id = ? AND actor_id = ?", activityID, ticketID, actorID).
		Delete(&models.ActivityModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete activity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("activity not found")
	}

	return nil
}

func (r *ActivityRepository) toDomainList(activityModels []models.ActivityModel) ([]*ticket.Activity, error) {
	activities := make([]*ticket.Activity, 0, len(activityModels))
	for i := range activityModels {
		a, err := r.mapper.ActivityToDomain(&activityModels[i])
		if err != nil {
			return nil, err
		}
		activities = append(activities, a)
	}
	return activities, nil
}
