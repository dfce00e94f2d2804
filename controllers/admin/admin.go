package admin

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type SettleRequest struct {
	TransactionID string `json:"transaction_id"`
}

// ConfirmDeposit flips a pending recharge to completed, which credits the
// depositor and runs the bonus/commission side effects exactly once.
func ConfirmDeposit(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TransactionID == "" {
		return helpers.JSONError(c, "TRANSACTION_ID_REQUIRED")
	}

	if err := services.ConfirmDeposit(req.TransactionID); err != nil {
		return helpers.JSONEngineError(c, err)
	}
	return helpers.JSONSuccess(c, "Deposit confirmed", fiber.Map{
		"transaction_id": req.TransactionID,
	})
}

func RejectDeposit(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TransactionID == "" {
		return helpers.JSONError(c, "TRANSACTION_ID_REQUIRED")
	}

	if err := services.RejectDeposit(req.TransactionID); err != nil {
		return helpers.JSONEngineError(c, err)
	}
	return helpers.JSONSuccess(c, "Deposit rejected", fiber.Map{
		"transaction_id": req.TransactionID,
	})
}

func ApproveWithdrawal(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TransactionID == "" {
		return helpers.JSONError(c, "TRANSACTION_ID_REQUIRED")
	}

	if err := services.ApproveWithdrawal(req.TransactionID); err != nil {
		return helpers.JSONEngineError(c, err)
	}
	return helpers.JSONSuccess(c, "Withdrawal approved", fiber.Map{
		"transaction_id": req.TransactionID,
	})
}

func RejectWithdrawal(c *fiber.Ctx) error {
	var req SettleRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}
	if req.TransactionID == "" {
		return helpers.JSONError(c, "TRANSACTION_ID_REQUIRED")
	}

	if err := services.RejectWithdrawal(req.TransactionID); err != nil {
		return helpers.JSONEngineError(c, err)
	}
	return helpers.JSONSuccess(c, "Withdrawal rejected", fiber.Map{
		"transaction_id": req.TransactionID,
	})
}

type SetPriceRequest struct {
	ItemType string  `json:"item_type"`
	Price    float64 `json:"price"`
}

func SetPrice(c *fiber.Ctx) error {
	var req SetPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if err := services.SetPrice(req.ItemType, req.Price); err != nil {
		return helpers.JSONEngineError(c, err)
	}
	return helpers.JSONSuccess(c, "Price updated", fiber.Map{
		"item_type": req.ItemType,
		"price":     req.Price,
	})
}
