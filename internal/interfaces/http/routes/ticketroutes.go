package routes

import (
	"github.com/gin-gonic/gin"

	"ticketdesk/internal/interfaces/http/handlers"
	"ticketdesk/internal/interfaces/http/middleware"
	"ticketdesk/internal/shared/authorization"
)

// TicketRouteConfig holds dependencies for ticket routes.
type TicketRouteConfig struct {
	TicketHandler  *handlers.TicketHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// SetupTicketRoutes configures ticket routes. Submission and listing are open
// to any authenticated user; triage operations require the admin role.
func SetupTicketRoutes(engine *gin.Engine, cfg *TicketRouteConfig) {
	engine.POST("/predict-ticket", cfg.AuthMiddleware.RequireAuth(), cfg.TicketHandler.Create)

	tickets := engine.Group("/tickets")
	tickets.Use(cfg.AuthMiddleware.RequireAuth())
	{
		tickets.GET("", cfg.TicketHandler.List)
		tickets.PATCH("/:id", authorization.RequireAdmin(), cfg.TicketHandler.UpdateStatus)
		tickets.DELETE("/:id", authorization.RequireAdmin(), cfg.TicketHandler.Delete)
	}
}
