package farm

import (
	"time"

	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type BuyChickenRequest struct {
	Type string `json:"type"`
}

func BuyChicken(c *fiber.Ctx) error {
	var req BuyChickenRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	chicken, err := services.BuyChicken(account.ID, req.Type)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Chicken purchased", fiber.Map{
		"chicken_id": chicken.ID,
		"type":       chicken.Type,
	})
}

type HatchChickenRequest struct {
	ChickenID uint `json:"chicken_id"`
}

func HatchChicken(c *fiber.Ctx) error {
	var req HatchChickenRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	eggs, err := services.HatchChicken(account.ID, req.ChickenID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Chicken hatched", fiber.Map{
		"chicken_id": req.ChickenID,
		"eggs":       eggs,
	})
}

type SellChickenRequest struct {
	ChickenID uint `json:"chicken_id"`
}

func SellChicken(c *fiber.Ctx) error {
	var req SellChickenRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	payout, err := services.SellChicken(account.ID, req.ChickenID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Chicken sold", fiber.Map{
		"chicken_id": req.ChickenID,
		"payout":     helpers.FormatFloat(payout, 2),
	})
}

func ListChickens(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	chickens, err := services.ListChickens(account.ID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	type chickenView struct {
		ID      uint   `json:"id"`
		Type    string `json:"type"`
		Ready   bool   `json:"ready"`
		ReadyAt string `json:"ready_at,omitempty"`
	}

	now := time.Now()
	views := make([]chickenView, 0, len(chickens))
	for i := range chickens {
		readyAt := services.ChickenReadyAt(&chickens[i])
		v := chickenView{ID: chickens[i].ID, Type: chickens[i].Type, Ready: !now.Before(readyAt)}
		if !v.Ready {
			v.ReadyAt = readyAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}
		views = append(views, v)
	}

	return helpers.JSONSuccess(c, "Chickens retrieved", views)
}
