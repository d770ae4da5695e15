package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
)

// RequireAPIKey validates the X-API-Key header against the configured key.
// An empty configured key disables the check (local development).
func RequireAPIKey(apiKey string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if apiKey == "" {
			return c.Next()
		}

		provided := c.Get("X-API-Key")
		if provided == "" {
			return c.Status(401).JSON(fiber.Map{"error": "Missing API key"})
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			return c.Status(401).JSON(fiber.Map{"error": "Invalid API key"})
		}

		return c.Next()
	}
}
