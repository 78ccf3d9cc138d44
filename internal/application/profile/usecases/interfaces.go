package usecases

import (
	"context"

	"devdesk/internal/application/profile/dto"
)

type CreateProfileExecutor interface {
	Execute(ctx context.Context, cmd CreateProfileCommand) (*dto.ProfileDTO, error)
}

type GetProfileExecutor interface {
	Execute(ctx context.Context, query GetProfileQuery) (*dto.ProfileDTO, error)
}

type ListProfilesExecutor interface {
	Execute(ctx context.Context) ([]*dto.ProfileDTO, error)
}

type UpdateProfileExecutor interface {
	Execute(ctx context.Context, cmd UpdateProfileCommand) (*dto.ProfileDTO, error)
}

type DeleteProfileExecutor interface {
	Execute(ctx context.Context, cmd DeleteProfileCommand) error
}
