package project

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devdesk/internal/application/project/dto"
	"devdesk/internal/application/project/usecases"
	"devdesk/internal/interfaces/http/handlers/testutil"
	"devdesk/internal/shared/errors"
)

type mockCreateProjectExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error)
}

func (m *mockCreateProjectExecutor) Execute(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockListProjectsExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.ListProjectsQuery) ([]*dto.ProjectDTO, error)
}

func (m *mockListProjectsExecutor) Execute(ctx context.Context, query usecases.ListProjectsQuery) ([]*dto.ProjectDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockGetProjectExecutor struct {
	ExecuteFunc func(ctx context.Context, query usecases.GetProjectQuery) (*dto.ProjectDTO, error)
}

func (m *mockGetProjectExecutor) Execute(ctx context.Context, query usecases.GetProjectQuery) (*dto.ProjectDTO, error) {
	return m.ExecuteFunc(ctx, query)
}

type mockUpdateProjectExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.UpdateProjectCommand) (*dto.ProjectDTO, error)
}

func (m *mockUpdateProjectExecutor) Execute(ctx context.Context, cmd usecases.UpdateProjectCommand) (*dto.ProjectDTO, error) {
	return m.ExecuteFunc(ctx, cmd)
}

type mockDeleteProjectExecutor struct {
	ExecuteFunc func(ctx context.Context, cmd usecases.DeleteProjectCommand) error
}

func (m *mockDeleteProjectExecutor) Execute(ctx context.Context, cmd usecases.DeleteProjectCommand) error {
	return m.ExecuteFunc(ctx, cmd)
}

func projectFixture(id uint, ownerID uuid.UUID) *dto.ProjectDTO {
	return &dto.ProjectDTO{
		ID:        id,
		Name:      "devdesk-api",
		OwnerID:   ownerID.String(),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func TestProjectHandler_CreateProject(t *testing.T) {
	callerID := uuid.New()

	t.Run("creates project", func(t *testing.T) {
		handler := NewProjectHandler(&mockCreateProjectExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error) {
				assert.Equal(t, callerID, cmd.CallerID)
				assert.Equal(t, "devdesk-api", cmd.Name)
				return projectFixture(1, callerID), nil
			},
		}, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "devdesk-api"})
		testutil.SetAuthContext(c, callerID)

		handler.CreateProject(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("missing name rejected", func(t *testing.T) {
		handler := NewProjectHandler(&mockCreateProjectExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error) {
				t.Fatal("use case should not be reached")
				return nil, nil
			},
		}, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/projects", CreateProjectRequest{})
		testutil.SetAuthContext(c, callerID)

		handler.CreateProject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("missing auth yields unauthorized", func(t *testing.T) {
		handler := NewProjectHandler(&mockCreateProjectExecutor{
			ExecuteFunc: func(ctx context.Context, cmd usecases.CreateProjectCommand) (*dto.ProjectDTO, error) {
				t.Fatal("use case should not be reached")
				return nil, nil
			},
		}, nil, nil, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/api/v1/projects", CreateProjectRequest{Name: "devdesk-api"})

		handler.CreateProject(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestProjectHandler_ListProjects(t *testing.T) {
	callerID := uuid.New()

	handler := NewProjectHandler(nil, &mockListProjectsExecutor{
		ExecuteFunc: func(ctx context.Context, query usecases.ListProjectsQuery) ([]*dto.ProjectDTO, error) {
			assert.Equal(t, callerID, query.CallerID)
			return []*dto.ProjectDTO{projectFixture(1, callerID), projectFixture(2, callerID)}, nil
		},
	}, nil, nil, nil, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects", nil)
	testutil.SetAuthContext(c, callerID)

	handler.ListProjects(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))

	var body []*dto.ProjectDTO
	require.NoError(t, json.Unmarshal(resp.Data, &body))
	assert.Len(t, body, 2)
}

func TestProjectHandler_GetProject(t *testing.T) {
	callerID := uuid.New()

	t.Run("returns owned project", func(t *testing.T) {
		handler := NewProjectHandler(nil, nil, &mockGetProjectExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetProjectQuery) (*dto.ProjectDTO, error) {
				assert.Equal(t, uint(7), query.ProjectID)
				return projectFixture(7, callerID), nil
			},
		}, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects/7", nil)
		testutil.SetAuthContext(c, callerID)
		testutil.SetURLParam(c, "id", "7")

		handler.GetProject(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-numeric id rejected", func(t *testing.T) {
		handler := NewProjectHandler(nil, nil, &mockGetProjectExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetProjectQuery) (*dto.ProjectDTO, error) {
				t.Fatal("use case should not be reached")
				return nil, nil
			},
		}, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects/abc", nil)
		testutil.SetAuthContext(c, callerID)
		testutil.SetURLParam(c, "id", "abc")

		handler.GetProject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("foreign project yields not found", func(t *testing.T) {
		handler := NewProjectHandler(nil, nil, &mockGetProjectExecutor{
			ExecuteFunc: func(ctx context.Context, query usecases.GetProjectQuery) (*dto.ProjectDTO, error) {
				return nil, errors.NewNotFoundError("project not found")
			},
		}, nil, nil, testutil.NewMockLogger())

		c, w := testutil.NewTestContext(http.MethodGet, "/api/v1/projects/7", nil)
		testutil.SetAuthContext(c, callerID)
		testutil.SetURLParam(c, "id", "7")

		handler.GetProject(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestProjectHandler_DeleteProject(t *testing.T) {
	callerID := uuid.New()

	handler := NewProjectHandler(nil, nil, nil, nil, &mockDeleteProjectExecutor{
		ExecuteFunc: func(ctx context.Context, cmd usecases.DeleteProjectCommand) error {
			assert.Equal(t, uint(7), cmd.ProjectID)
			assert.Equal(t, callerID, cmd.CallerID)
			return nil
		},
	}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodDelete, "/api/v1/projects/7", nil)
	testutil.SetAuthContext(c, callerID)
	testutil.SetURLParam(c, "id", "7")

	handler.DeleteProject(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
}
