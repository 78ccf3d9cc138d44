package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"devdesk/internal/shared/errors"
)

// ContextKeyUserID is the Gin context key the auth middleware stores the
// resolved caller identity under. Only the middleware writes it.
const ContextKeyUserID = "user_id"

// CallerID returns the authenticated caller identity from the Gin context.
// Handlers behind the auth middleware always get a value; everywhere else
// the absence is reported as an unauthorized error.
func CallerID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeyUserID)
	if !exists {
		return uuid.Nil, errors.NewUnauthorizedError("authentication required")
	}

	userID, ok := v.(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, errors.NewUnauthorizedError("authentication required")
	}

	return userID, nil
}

// ParseUintParam parses a numeric URL path parameter.
// entityName is used in error messages (e.g., "project", "ticket").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || parsed == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(parsed), nil
}

// ParseUUIDParam parses a UUID URL path parameter.
func ParseUUIDParam(c *gin.Context, paramName, entityName string) (uuid.UUID, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return uuid.Nil, errors.NewValidationError(entityName + " ID is required")
	}

	parsed, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return parsed, nil
}
