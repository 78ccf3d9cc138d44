package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/domain/project"
	"devdesk/internal/shared/errors"
)

func TestCreateProjectUseCase_Execute(t *testing.T) {
	ownerID := uuid.New()

	tests := []struct {
		name    string
		cmd     CreateProjectCommand
		wantErr bool
	}{
		{
			name: "valid project",
			cmd:  CreateProjectCommand{CallerID: ownerID, Name: "devdesk-api", Description: "backend"},
		},
		{
			name:    "missing name",
			cmd:     CreateProjectCommand{CallerID: ownerID},
			wantErr: true,
		},
		{
			name:    "name too long",
			cmd:     CreateProjectCommand{CallerID: ownerID, Name: strings.Repeat("x", 201)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockProjectRepository{
				SaveFunc: func(ctx context.Context, p *project.Project) error {
					return p.SetID(42)
				},
			}

			uc := NewCreateProjectUseCase(repo, newTestLogger())
			result, err := uc.Execute(context.Background(), tt.cmd)

			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsValidationError(err))
				return
			}

			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, uint(42), result.ID)
			assert.Equal(t, tt.cmd.Name, result.Name)
			assert.Equal(t, ownerID.String(), result.OwnerID)
		})
	}
}
