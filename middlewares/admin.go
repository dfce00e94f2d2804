package middlewares

import (
	"crypto/subtle"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/helpers"

	"github.com/gofiber/fiber/v2"
)

// AdminAuth gates the settlement endpoints behind the shared admin key.
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := c.Get("X-Admin-Key")
		expected := config.Get().AdminAPIKey

		if expected == "" || subtle.ConstantTimeCompare([]byte(key), []byte(expected)) != 1 {
			return helpers.JSONError(c, "INVALID_ADMIN_KEY")
		}
		return c.Next()
	}
}
