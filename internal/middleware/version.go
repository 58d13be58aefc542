package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// APIVersion is reported on every response so clients can detect a stale
// deployment.
const APIVersion = "1.0.0"

// Version adds the X-Api-Version header to all responses.
func Version() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("X-Api-Version", APIVersion)
		return c.Next()
	}
}
