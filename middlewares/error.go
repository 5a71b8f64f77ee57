package middlewares

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/Milaston7/ARRENDAKI-sub001/logger"
	"github.com/Milaston7/ARRENDAKI-sub001/render"
)

// ErrorHandler centralizes error responses and keeps messages sanitized.
func ErrorHandler(c *fiber.Ctx, err error) error {
	// 1) Fiber errors (use their status code + message)
	if fe, ok := err.(*fiber.Error); ok {
		return c.Status(fe.Code).JSON(fiber.Map{"message": fe.Message})
	}

	// 2) Validation errors (422 + per-field info)
	if ve, ok := err.(validator.ValidationErrors); ok {
		out := make(map[string]string, len(ve))
		for _, fe := range ve {
			out[fe.Field()] = fe.Tag()
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"message": "validation failed",
			"errors":  out,
		})
	}

	// 3) Document rendering taxonomy: surfaced to the caller instead of a
	// partially blank document.
	var re *render.RenderError
	if errors.As(err, &re) {
		status := fiber.StatusBadRequest
		if errors.Is(err, render.ErrUnsupportedDocumentType) || errors.Is(err, render.ErrFormattingError) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{
			"message": re.Err.Error(),
			"field":   re.Field,
		})
	}

	// 4) Unknown errors (500)
	log := logger.WithComponent("http")
	log.Error().Err(err).Str("path", c.Path()).Msg("internal error")
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": "internal server error",
	})
}
