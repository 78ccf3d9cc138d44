package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/shared/errors"
)

func TestSignupUseCase_Execute(t *testing.T) {
	tests := []struct {
		name      string
		cmd       SignupCommand
		exists    bool
		wantErr   bool
		errType   errors.ErrorType
	}{
		{
			name: "valid signup",
			cmd:  SignupCommand{Email: "dev@example.com", Password: "secret123"},
		},
		{
			name:    "duplicate email",
			cmd:     SignupCommand{Email: "dev@example.com", Password: "secret123"},
			exists:  true,
			wantErr: true,
			errType: errors.ErrorTypeConflict,
		},
		{
			name:    "invalid email",
			cmd:     SignupCommand{Email: "not-an-email", Password: "secret123"},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
		{
			name:    "password too short",
			cmd:     SignupCommand{Email: "dev@example.com", Password: "abc"},
			wantErr: true,
			errType: errors.ErrorTypeValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{
				ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
					return tt.exists, nil
				},
			}

			uc := NewSignupUseCase(userRepo, &mockPasswordHasher{}, &mockJWTService{}, newTestLogger())
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				appErr := errors.GetAppError(err)
				require.NotNil(t, appErr)
				assert.Equal(t, tt.errType, appErr.Type)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.cmd.Email, result.User.Email())
			assert.NotEmpty(t, result.User.ID())
			assert.Equal(t, "access", result.Tokens.AccessToken)
			assert.Equal(t, "refresh", result.Tokens.RefreshToken)
		})
	}
}

func TestSignupUseCase_Execute_HashesPassword(t *testing.T) {
	uc := NewSignupUseCase(&mockUserRepository{}, &mockPasswordHasher{}, &mockJWTService{}, newTestLogger())

	result, err := uc.Execute(context.Background(), SignupCommand{
		Email:    "dev@example.com",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "hashed:secret123", result.User.PasswordHash())
}
