package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"fittrack/internal/services"
)

// LocalsUserKey is the Fiber locals key under which AuthRequired stores the
// authenticated *models.User.
const LocalsUserKey = "user"

// AuthRequired is a Fiber middleware that rejects any request without a
// valid bearer token before it can reach the store layer. The 401 body is
// uniform: callers cannot tell a missing header from a bad signature or an
// expired token.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return unauthorized(c)
		}

		user, err := authService.ValidateToken(parts[1])
		if err != nil {
			return unauthorized(c)
		}

		c.Locals(LocalsUserKey, user)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid or missing credentials",
	})
}
