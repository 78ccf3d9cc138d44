package routes

import (
	"github.com/gin-gonic/gin"

	profilehandlers "devdesk/internal/interfaces/http/handlers/profile"
	"devdesk/internal/interfaces/http/middleware"
)

// ProfileRouteConfig holds dependencies for profile routes.
type ProfileRouteConfig struct {
	ProfileHandler *profilehandlers.ProfileHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProfileRoutes configures profile routes. Reads are public,
// mutations require a bearer token.
func SetupProfileRoutes(api *gin.RouterGroup, cfg *ProfileRouteConfig) {
	profiles := api.Group("/profiles")
	{
		profiles.GET("", cfg.ProfileHandler.ListProfiles)
		profiles.GET("/:id", cfg.ProfileHandler.GetProfile)

		profiles.POST("", cfg.AuthMiddleware.RequireAuth(), cfg.ProfileHandler.CreateProfile)
		profiles.PATCH("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.ProfileHandler.UpdateProfile)
		profiles.DELETE("/:id", cfg.AuthMiddleware.RequireAuth(), cfg.ProfileHandler.DeleteProfile)
	}
}
