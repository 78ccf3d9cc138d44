package project

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devdesk/internal/application/project/usecases"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
	"devdesk/internal/shared/utils"
)

type ProjectHandler struct {
	createProjectUC usecases.CreateProjectExecutor
	listProjectsUC  usecases.ListProjectsExecutor
	getProjectUC    usecases.GetProjectExecutor
	updateProjectUC usecases.UpdateProjectExecutor
	deleteProjectUC usecases.DeleteProjectExecutor
	logger          logger.Interface
}

func NewProjectHandler(
	createProjectUC usecases.CreateProjectExecutor,
	listProjectsUC usecases.ListProjectsExecutor,
	getProjectUC usecases.GetProjectExecutor,
	updateProjectUC usecases.UpdateProjectExecutor,
	deleteProjectUC usecases.DeleteProjectExecutor,
	logger logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createProjectUC: createProjectUC,
		listProjectsUC:  listProjectsUC,
		getProjectUC:    getProjectUC,
		updateProjectUC: updateProjectUC,
		deleteProjectUC: deleteProjectUC,
		logger:          logger,
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create project request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createProjectUC.Execute(c.Request.Context(), req.ToCommand(callerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Project created successfully")
}

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listProjectsUC.Execute(c.Request.Context(), usecases.ListProjectsQuery{CallerID: callerID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProjectUC.Execute(c.Request.Context(), usecases.GetProjectQuery{
		CallerID:  callerID,
		ProjectID: projectID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProject handles PATCH /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update project request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateProjectUC.Execute(c.Request.Context(), req.ToCommand(callerID, projectID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Project updated successfully", result)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	projectID, err := utils.ParseUintParam(c, "id", "project")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProjectUC.Execute(c.Request.Context(), usecases.DeleteProjectCommand{
		CallerID:  callerID,
		ProjectID: projectID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
