package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shershunm/BibleStudy/internal/services"
	"github.com/shershunm/BibleStudy/internal/utils"
	"gorm.io/gorm"
)

// UserIDKey is the locals key under which AuthUser stores the authenticated
// user id.
const UserIDKey = "userID"

// AuthUser validates the Bearer session token and stores the owning user id
// in locals. Requests without a valid, unexpired session get a 401.
func AuthUser(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authentication required")
		}

		userID, err := services.ValidateToken(db, token)
		if err != nil {
			if err == services.ErrSessionNotFound {
				return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid or expired session")
			}
			return utils.InternalErrorResponse(c, err, "Authentication failed")
		}

		c.Locals(UserIDKey, userID)
		c.Locals("sessionToken", token)
		return c.Next()
	}
}

// UserID returns the authenticated user id stored by AuthUser.
func UserID(c *fiber.Ctx) uint64 {
	id, _ := c.Locals(UserIDKey).(uint64)
	return id
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
