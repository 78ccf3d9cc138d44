package profile

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devdesk/internal/application/profile/usecases"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
	"devdesk/internal/shared/utils"
)

type ProfileHandler struct {
	createProfileUC usecases.CreateProfileExecutor
	getProfileUC    usecases.GetProfileExecutor
	listProfilesUC  usecases.ListProfilesExecutor
	updateProfileUC usecases.UpdateProfileExecutor
	deleteProfileUC usecases.DeleteProfileExecutor
	logger          logger.Interface
}

func NewProfileHandler(
	createProfileUC usecases.CreateProfileExecutor,
	getProfileUC usecases.GetProfileExecutor,
	listProfilesUC usecases.ListProfilesExecutor,
	updateProfileUC usecases.UpdateProfileExecutor,
	deleteProfileUC usecases.DeleteProfileExecutor,
	logger logger.Interface,
) *ProfileHandler {
	return &ProfileHandler{
		createProfileUC: createProfileUC,
		getProfileUC:    getProfileUC,
		listProfilesUC:  listProfilesUC,
		updateProfileUC: updateProfileUC,
		deleteProfileUC: deleteProfileUC,
		logger:          logger,
	}
}

// CreateProfile handles POST /profiles
func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid create profile request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.createProfileUC.Execute(c.Request.Context(), req.ToCommand(callerID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Profile created successfully")
}

// GetProfile handles GET /profiles/:id
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	profileID, err := utils.ParseUUIDParam(c, "id", "profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{ProfileID: profileID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListProfiles handles GET /profiles
func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	result, err := h.listProfilesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// UpdateProfile handles PATCH /profiles/:id
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profileID, err := utils.ParseUUIDParam(c, "id", "profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid update profile request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.updateProfileUC.Execute(c.Request.Context(), req.ToCommand(callerID, profileID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", result)
}

// DeleteProfile handles DELETE /profiles/:id
func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	callerID, err := utils.CallerID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	profileID, err := utils.ParseUUIDParam(c, "id", "profile")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteProfileUC.Execute(c.Request.Context(), usecases.DeleteProfileCommand{
		CallerID:  callerID,
		ProfileID: profileID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
