package routes

import (
	"github.com/gin-gonic/gin"

	projecthandlers "devdesk/internal/interfaces/http/handlers/project"
	tickethandlers "devdesk/internal/interfaces/http/handlers/ticket"
	"devdesk/internal/interfaces/http/middleware"
)

// ProjectRouteConfig holds dependencies for project routes.
type ProjectRouteConfig struct {
	ProjectHandler *projecthandlers.ProjectHandler
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupProjectRoutes configures project routes, including the nested
// ticket collection under a project.
func SetupProjectRoutes(api *gin.RouterGroup, cfg *ProjectRouteConfig) {
	projects := api.Group("/projects")
	projects.Use(cfg.AuthMiddleware.RequireAuth())
	{
		projects.POST("", cfg.ProjectHandler.CreateProject)
		projects.GET("", cfg.ProjectHandler.ListProjects)

		projects.GET("/:id", cfg.ProjectHandler.GetProject)
		projects.PATCH("/:id", cfg.ProjectHandler.UpdateProject)
		projects.DELETE("/:id", cfg.ProjectHandler.DeleteProject)
	}

	projectTickets := api.Group("/projects/:id/tickets")
	projectTickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		projectTickets.POST("", cfg.TicketHandler.CreateTicket)
		projectTickets.GET("", cfg.TicketHandler.ListTickets)
	}
}
