package middlewares

import (
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/gofiber/fiber/v2"
)

// SessionAuth resolves the X-Session-ID header to an account and stores it
// in Locals("account") for the handlers downstream.
func SessionAuth(c *fiber.Ctx) error {
	sid := c.Get("X-Session-ID")
	if sid == "" {
		return helpers.JSONError(c, "SESSION_ID_REQUIRED")
	}

	var session models.Session
	if err := database.DB.Preload("Account").
		Where("sid = ? AND expires_at > ?", sid, time.Now()).
		First(&session).Error; err != nil {
		return helpers.JSONError(c, "INVALID_OR_EXPIRED_SESSION")
	}

	if !session.Account.IsActive {
		return helpers.JSONError(c, "ACCOUNT_DISABLED")
	}

	c.Locals("account", session.Account)
	return c.Next()
}
