package handler

import (
	"errors"

	"go-dropship-api/internal/service"
	"go-dropship-api/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Every route answers with the same envelope: {code, status, data}.
// Errors carry data.error (and data.details for validation failures).

func respond(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"code":   code,
		"status": "success",
		"data":   data,
	})
}

func respondError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"code":   code,
		"status": "error",
		"data":   fiber.Map{"error": message},
	})
}

// respondServiceError maps the service error taxonomy onto HTTP. Store
// failures are logged with full detail but answered with a generic message.
func respondServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case service.IsNotFound(err):
		return respondError(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrEmailUsed):
		return respondError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		return respondError(c, fiber.StatusUnauthorized, err.Error())
	default:
		logger.L().Error("request failed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return respondError(c, fiber.StatusInternalServerError, "Internal Server Error")
	}
}

// actor returns the acting user's id from the JWT context.
func actor(c *fiber.Ctx) string {
	userID := c.Locals("user_id")
	if userID == nil {
		return "system"
	}
	return userID.(string)
}
