package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sahilchouksey/school-intake/utils/response"
)

// HandleCheckHealth handles GET /api/health. It reports liveness only.
func HandleCheckHealth(c *fiber.Ctx) error {
	return response.OK(c, response.StatusResponse{Status: "ok"})
}
