package farm

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type BuyResourceRequest struct {
	Resource string `json:"resource"`
	Count    int    `json:"count"`
}

func BuyResource(c *fiber.Ctx) error {
	var req BuyResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	if err := services.BuyResource(account.ID, req.Resource, req.Count); err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Resource purchased", fiber.Map{
		"resource": req.Resource,
		"count":    req.Count,
	})
}

type SellEggsRequest struct {
	Count int `json:"count"`
}

func SellEggs(c *fiber.Ctx) error {
	var req SellEggsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	payout, err := services.SellEggs(account.ID, req.Count)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Eggs sold", fiber.Map{
		"count":  req.Count,
		"payout": helpers.FormatFloat(payout, 2),
	})
}

// FarmState returns the balance and resource bundle in one call for the
// dashboard view.
func FarmState(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	bundle, err := services.GetOrCreateBundle(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}
	balance, err := services.GetBalance(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Farm state retrieved", fiber.Map{
		"usdt_balance":  helpers.FormatFloat(balance, 2),
		"water_buckets": bundle.WaterBuckets,
		"wheat_bags":    bundle.WheatBags,
		"eggs":          bundle.Eggs,
		"mystery_boxes": bundle.MysteryBoxes,
		"referral_code": account.ReferralCode,
	})
}
