package utils

import (
	"podcastsite/internal/errmsg"

	"github.com/gofiber/fiber/v3"
)

func StatusError(c fiber.Ctx, se errmsg.StatusError) error {
	return c.Status(se.StatusCode).JSON(map[string]string{
		"message": se.Message,
	})
}

// ValidationError renders a StatusError together with field level messages.
func ValidationError(c fiber.Ctx, se errmsg.StatusError, fields map[string][]string) error {
	return c.Status(se.StatusCode).JSON(fiber.Map{
		"message": se.Message,
		"errors":  fields,
	})
}

// Message renders a plain {"message": ...} body with the given status.
func Message(c fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(map[string]string{
		"message": message,
	})
}

// MessageResponse documents the {"message": ...} body.
type MessageResponse struct {
	Message string `json:"message" example:"Sync process completed"`
}
