package middleware

import (
	"github.com/gofiber/fiber/v2"

	"courtside/backend/config"
	"courtside/backend/models"
	"courtside/backend/utils"
)

const (
	LocalUserID = "user_id"
	LocalRole   = "role"
)

// AuthMiddleware rejects requests without a valid token and stores the
// session in c.Locals.
func AuthMiddleware(cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session, err := utils.ExtractSession(c, cfg)
		if err != nil {
			return utils.Unauthorized(c, "Unauthorized")
		}
		c.Locals(LocalUserID, session.UserID)
		c.Locals(LocalRole, session.Role)
		return c.Next()
	}
}

// TeacherMiddleware must run after AuthMiddleware.
func TeacherMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if Role(c) != models.RoleTeacher {
			return utils.Forbidden(c, "Forbidden - Teacher access required")
		}
		return c.Next()
	}
}

// UserID is the caller id set by AuthMiddleware.
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(LocalUserID).(string)
	return id
}

func Role(c *fiber.Ctx) string {
	role, _ := c.Locals(LocalRole).(string)
	return role
}
