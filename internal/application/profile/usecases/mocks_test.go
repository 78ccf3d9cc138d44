package usecases

import (
	"context"

	"github.com/google/uuid"

	"devdesk/internal/domain/profile"
	"devdesk/internal/shared/logger"
)

type mockProfileRepository struct {
	SaveFunc       func(ctx context.Context, p *profile.Profile) error
	UpdateFunc     func(ctx context.Context, p *profile.Profile) error
	DeleteFunc     func(ctx context.Context, profileID uuid.UUID) error
	GetByIDFunc    func(ctx context.Context, profileID uuid.UUID) (*profile.Profile, error)
	ExistsByIDFunc func(ctx context.Context, profileID uuid.UUID) (bool, error)
	ListFunc       func(ctx context.Context) ([]*profile.Profile, error)
}

func (m *mockProfileRepository) Save(ctx context.Context, p *profile.Profile) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *profile.Profile) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProfileRepository) Delete(ctx context.Context, profileID uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, profileID)
	}
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, profileID uuid.UUID) (*profile.Profile, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockProfileRepository) ExistsByID(ctx context.Context, profileID uuid.UUID) (bool, error) {
	if m.ExistsByIDFunc != nil {
		return m.ExistsByIDFunc(ctx, profileID)
	}
	return false, nil
}

func (m *mockProfileRepository) List(ctx context.Context) ([]*profile.Profile, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
