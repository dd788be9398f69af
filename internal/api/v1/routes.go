package apiv1

import "github.com/gofiber/fiber/v2"

// RegisterHandlers attaches the v1 routes to the given router group.
func RegisterHandlers(r fiber.Router, s *APIServer) {
	r.Get("/ping", s.GetPing)
	r.Get("/reports", s.GetMapFeed)
	r.Get("/stats", s.GetStats)
}
