package project

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Save(ctx context.Context, project *Project) error
	Update(ctx context.Context, project *Project) error
	// Delete removes a project only when the owner matches.
	// Returns a not-found error when no row satisfies both filters.
	Delete(ctx context.Context, projectID uint, ownerID uuid.UUID) error
	// GetByIDAndOwner fetches a project scoped to its owner. A miss does not
	// distinguish "absent" from "owned by someone else".
	GetByIDAndOwner(ctx context.Context, projectID uint, ownerID uuid.UUID) (*Project, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
}
