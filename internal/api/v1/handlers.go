package apiv1

import (
	"github.com/gofiber/fiber/v2"

	// Delegate to existing controllers to keep behavior consistent
	"github.com/EcoGuardHQ/EcoGuard/app/controllers"
	"github.com/EcoGuardHQ/EcoGuard/internal/pkg/statistics"
)

// Pong is the ping response body
type Pong struct {
	Ping string `json:"ping"`
}

// APIServer implements the public v1 surface
type APIServer struct{}

// NewAPIServer creates a new API server instance
func NewAPIServer() *APIServer {
	return &APIServer{}
}

// GetPing handles the ping endpoint
func (s *APIServer) GetPing(c *fiber.Ctx) error {
	response := Pong{
		Ping: "pong",
	}

	return c.Status(fiber.StatusOK).JSON(response)
}

// GetMapFeed returns the public report feed the map view renders.
// Delegates to the existing controller for consistent response shape.
func (s *APIServer) GetMapFeed(c *fiber.Ctx) error {
	return controllers.HandleListReports(c)
}

// GetStats returns public counters for the landing page, served from the
// statistics cache.
func (s *APIServer) GetStats(c *fiber.Ctx) error {
	return c.JSON(statistics.GetStatisticsData())
}
