package profile

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, profile *Profile) error
	Update(ctx context.Context, profile *Profile) error
	Delete(ctx context.Context, profileID uuid.UUID) error
	GetByID(ctx context.Context, profileID uuid.UUID) (*Profile, error)
	ExistsByID(ctx context.Context, profileID uuid.UUID) (bool, error)
	List(ctx context.Context) ([]*Profile, error)
}
