package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends an error body matching the Node.js backend format:
// a bare {"error": message} object.
func ErrorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// NotFoundResponse sends a 404 with the given message
func NotFoundResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusNotFound, message)
}

// InternalErrorResponse logs the underlying error server-side and returns a
// generic message to the client.
func InternalErrorResponse(c *fiber.Ctx, err error, message string) error {
	log.Printf("%s %s: %v", c.Method(), c.OriginalURL(), err)
	return ErrorResponse(c, fiber.StatusInternalServerError, message)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}
