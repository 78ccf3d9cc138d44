package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"devdesk/internal/application/auth/usecases"
	"devdesk/internal/shared/errors"
	"devdesk/internal/shared/logger"
	"devdesk/internal/shared/utils"
)

type AuthHandler struct {
	signupUC usecases.SignupExecutor
	loginUC  usecases.LoginExecutor
	logger   logger.Interface
}

func NewAuthHandler(
	signupUC usecases.SignupExecutor,
	loginUC usecases.LoginExecutor,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUC: signupUC,
		loginUC:  loginUC,
		logger:   logger,
	}
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid signup request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), usecases.SignupCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c,
		newAuthResponse(result.Tokens, result.User.ID().String(), result.User.Email(), result.User.CreatedAt()),
		"Account created successfully")
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError(err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully",
		newAuthResponse(result.Tokens, result.User.ID().String(), result.User.Email(), result.User.CreatedAt()))
}
