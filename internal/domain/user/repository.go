package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	// GetByEmail returns (nil, nil) when no account exists for the address.
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
