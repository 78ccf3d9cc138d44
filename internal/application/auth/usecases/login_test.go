package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/domain/user"
	"devdesk/internal/shared/errors"
)

func existingTestUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.ReconstructUser(uuid.New(), email, "hashed:secret123", time.Now())
	require.NoError(t, err)
	return u
}

func TestLoginUseCase_Execute(t *testing.T) {
	email := "dev@example.com"

	tests := []struct {
		name       string
		cmd        LoginCommand
		userExists bool
		verifyErr  error
		wantErr    bool
	}{
		{
			name:       "valid credentials",
			cmd:        LoginCommand{Email: email, Password: "secret123"},
			userExists: true,
		},
		{
			name:    "unknown email",
			cmd:     LoginCommand{Email: "nobody@example.com", Password: "secret123"},
			wantErr: true,
		},
		{
			name:       "wrong password",
			cmd:        LoginCommand{Email: email, Password: "wrong"},
			userExists: true,
			verifyErr:  fmt.Errorf("hash mismatch"),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{
				GetByEmailFunc: func(ctx context.Context, addr string) (*user.User, error) {
					if tt.userExists {
						return existingTestUser(t, email), nil
					}
					return nil, nil
				},
			}
			hasher := &mockPasswordHasher{
				VerifyFunc: func(password, hash string) error {
					return tt.verifyErr
				},
			}

			uc := NewLoginUseCase(userRepo, hasher, &mockJWTService{}, newTestLogger())
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUnauthorizedError(err))
				assert.Equal(t, "invalid email or password", errors.GetAppError(err).Message)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, email, result.User.Email())
			assert.Equal(t, "access", result.Tokens.AccessToken)
		})
	}
}
