package http

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers all meeting search API routes.
// It creates a versioned API group and attaches the handler methods.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	RegisterRoutesWithMiddleware(e, h)
}

// RegisterRoutesWithMiddleware registers routes with middleware applied to the versioned API only.
func RegisterRoutesWithMiddleware(e *echo.Echo, h *Handler, middleware ...echo.MiddlewareFunc) {
	// Health check and docs (no version prefix)
	e.GET("/health", h.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1", middleware...)

	meetings := api.Group("/meetings")
	meetings.POST("/search", h.SearchMeeting)
	meetings.POST("/optimization", h.MeetingOptimization)

	airports := api.Group("/airports")
	airports.GET("", h.SearchAirports)
	airports.GET("/:code/nearby", h.NearbyAirports)
}
