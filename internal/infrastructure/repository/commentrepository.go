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

type CommentRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *CommentRepository) Save(ctx context.Context, c *ticket.Comment) error {
	model := r.mapper.CommentToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save comment: %w", err)
	}

	return c.SetID(model.ID)
}

func (r *CommentRepository) ListByTicket(ctx context.Context, ticketID uint) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.toDomainList(commentModels)
}

func (r *CommentRepository) ListByTicketAndAuthor(ctx context.Context, ticketID uint, authorID uuid.UUID) ([]*ticket.Comment, error) {
	var commentModels []models.CommentModel

	if err := r.db.WithContext(ctx).
		Where("ticket_id = ? AND author_id = ?", ticketID, authorID).
		Order("created_at ASC").
		Find(&commentModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}

	return r.toDomainList(commentModels)
}

// DeleteByIDAndAuthor scopes authorship into the delete statement itself, so
// a non-author can never tell a foreign comment apart from a missing one.
func (r *CommentRepository) DeleteByIDAndAuthor(ctx context.Context, commentID, ticketID uint, authorID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND ticket_id = ? AND author_id = ?", commentID, ticketID, authorID).
		Delete(&models.CommentModel{})

	if result.Error != nil {
		return fmt.Errorf("failed to delete comment: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("comment not found")
	}

	return nil
}

func (r *CommentRepository) toDomainList(commentModels []models.CommentModel) ([]*ticket.Comment, error) {
	comments := make([]*ticket.Comment, 0, len(commentModels))
	for i := range commentModels {
		c, err := r.mapper.CommentToDomain(&commentModels[i])
		if err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, nil
}
