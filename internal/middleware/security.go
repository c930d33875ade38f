package middleware

import "github.com/gofiber/fiber/v2"

// StrictTransport sets the Strict-Transport-Security header on every
// response. Enabled in production only.
func StrictTransport() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set(fiber.HeaderStrictTransportSecurity, "max-age=31536000; includeSubDomains")
		return c.Next()
	}
}
