package usecases

import "context"

type SignupExecutor interface {
	Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}
