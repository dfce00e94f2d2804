package auth

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type RegisterRequest struct {
	Username     string `json:"username"`
	Password     string `json:"password"`
	ReferralCode string `json:"referral_code"`
}

func Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, err := services.RegisterAccount(req.Username, req.Password, req.ReferralCode)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Account registered successfully", fiber.Map{
		"account_id":    account.ID,
		"username":      account.Username,
		"referral_code": account.ReferralCode,
	})
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	session, err := services.Login(req.Username, req.Password)
	if err != nil {
		return helpers.JSONError(c, "INVALID_CREDENTIALS")
	}

	return helpers.JSONSuccess(c, "Login successful", fiber.Map{
		"session_id": session.SID,
		"expires_at": session.ExpiresAt,
	})
}
