package routes

import (
	"github.com/gin-gonic/gin"

	tickethandlers "devdesk/internal/interfaces/http/handlers/ticket"
	"devdesk/internal/interfaces/http/middleware"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket, comment and activity routes.
// Ticket creation and listing live under the project routes; everything
// addressed by ticket ID is registered here.
func SetupTicketRoutes(api *gin.RouterGroup, cfg *TicketRouteConfig) {
	tickets := api.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("/:ticket_id", cfg.TicketHandler.GetTicket)
		tickets.PATCH("/:ticket_id", cfg.TicketHandler.UpdateTicket)
		tickets.DELETE("/:ticket_id", cfg.TicketHandler.DeleteTicket)

		// Static segments must be registered before parameterized siblings.
		tickets.POST("/:ticket_id/comments", cfg.TicketHandler.AddComment)
		tickets.GET("/:ticket_id/comments", cfg.TicketHandler.ListComments)
		tickets.GET("/:ticket_id/comments/user", cfg.TicketHandler.ListMyComments)
		tickets.DELETE("/:ticket_id/comments/:comment_id", cfg.TicketHandler.DeleteComment)

		tickets.POST("/:ticket_id/activity", cfg.TicketHandler.RecordActivity)
		tickets.GET("/:ticket_id/activity", cfg.TicketHandler.ListActivities)
		tickets.GET("/:ticket_id/activity/user", cfg.TicketHandler.ListMyActivities)
		tickets.DELETE("/:ticket_id/activity/:activity_id", cfg.TicketHandler.DeleteActivity)
	}
}
