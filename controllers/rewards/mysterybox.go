package rewards

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type BuyBoxRequest struct {
	BoxType string `json:"box_type"`
	Count   int    `json:"count"`
}

func BuyBox(c *fiber.Ctx) error {
	var req BuyBoxRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.Count == 0 {
		req.Count = 1
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	if err := services.BuyMysteryBox(account.ID, req.BoxType, req.Count); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Mystery box purchased", fiber.Map{
		"box_type": req.BoxType,
		"count":    req.Count,
	})
}

type OpenBoxRequest struct {
	BoxType string `json:"box_type"`
}

func OpenBox(c *fiber.Ctx) error {
	var req OpenBoxRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	reward, err := services.OpenMysteryBox(account.ID, req.BoxType)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Mystery box opened", fiber.Map{
		"reward_id":      reward.ID,
		"box_type":       reward.BoxType,
		"reward_type":    reward.RewardType,
		"reward_details": reward.RewardDetails,
		"rarity":         reward.Rarity,
	})
}

type ClaimBoxRequest struct {
	RewardID uint `json:"reward_id"`
}

func ClaimBox(c *fiber.Ctx) error {
	var req ClaimBoxRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	reward, err := services.ClaimMysteryBoxReward(account.ID, req.RewardID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Mystery box reward claimed", reward)
}

func ListBoxRewards(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	rewards, err := services.ListMysteryBoxRewards(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Box rewards retrieved", rewards)
}
