package controllers

import "github.com/gofiber/fiber/v2"

// GET /api/health
func Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// GET /api/ready — 503 until the renderer's warm-up gate has flipped; the
// frontend shows its loading indicator off this endpoint.
func Ready(c *fiber.Ctx) error {
	if docRenderer == nil || !docRenderer.Ready() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "warming up"})
	}
	return c.JSON(fiber.Map{"status": "ready"})
}
