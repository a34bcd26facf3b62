package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`

	// Airports is the size of the built-in airport table
	Airports int `json:"airports,omitempty"`
}

// Health writes a health check response.
func Health(c echo.Context, airports int) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status:   "ok",
		Airports: airports,
	})
}
