package rewards

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// GetDaily materializes (or returns) today's login reward.
func GetDaily(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	reward, err := services.GetDailyReward(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Daily reward retrieved", fiber.Map{
		"reward_id":      reward.ID,
		"streak_day":     reward.StreakDay,
		"reward_type":    reward.RewardType,
		"reward_details": reward.RewardDetails,
		"claimed":        reward.Claimed,
	})
}

type ClaimDailyRequest struct {
	RewardID uint `json:"reward_id"`
}

func ClaimDaily(c *fiber.Ctx) error {
	var req ClaimDailyRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	reward, err := services.ClaimDailyReward(account.ID, req.RewardID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Daily reward claimed", reward)
}
