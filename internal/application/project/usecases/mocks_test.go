package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/project"
	"devdesk/internal/shared/logger"
)

type mockProjectRepository struct {
	SaveFunc            func(ctx context.Context, p *project.Project) error
	UpdateFunc          func(ctx context.Context, p *project.Project) error
	DeleteFunc          func(ctx context.Context, projectID uint, ownerID uuid.UUID) error
	GetByIDAndOwnerFunc func(ctx context.Context, projectID uint, ownerID uuid.UUID) (*project.Project, error)
	ListByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error)
}

func (m *mockProjectRepository) Save(ctx context.Context, p *project.Project) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Update(ctx context.Context, p *project.Project) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProjectRepository) Delete(ctx context.Context, projectID uint, ownerID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, projectID, ownerID)
	}
	return nil
}

func (m *mockProjectRepository) GetByIDAndOwner(ctx context.Context, projectID uint, ownerID uuid.UUID) (*project.Project, error) {
	if m.GetByIDAndOwnerFunc != nil {
		return m.GetByIDAndOwnerFunc(ctx, projectID, ownerID)
	}
	return nil, nil
}

func (m *mockProjectRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	if m.ListByOwnerFunc != nil {
		return m.ListByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
