package controllers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Milaston7/ARRENDAKI-sub001/navigation"
)

// GET /api/navigation — works anonymous and authenticated; OptionalAuth fills
// the locals when a valid token is present.
func GetNavigation(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)
	role, _ := c.Locals("role").(string)
	group, _ := c.Locals("group").(string)

	viewer := navigation.Viewer{
		Authenticated: userID != "",
		Role:          role,
		Group:         group,
	}
	return c.JSON(fiber.Map{"items": navigation.Items(viewer)})
}
