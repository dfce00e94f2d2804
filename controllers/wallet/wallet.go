package wallet

import (
	"github.com/hidogang/chipkuold-sub000/helpers"
	"github.com/hidogang/chipkuold-sub000/models"
	"github.com/hidogang/chipkuold-sub000/services"

	"github.com/gofiber/fiber/v2"
)

type DepositRequest struct {
	Amount     float64 `json:"amount"`
	ExternalID string  `json:"external_id"`
}

// Deposit records a pending recharge. The gateway/admin confirms it later;
// only that confirmation credits the balance and triggers commissions.
func Deposit(c *fiber.Ctx) error {
	var req DepositRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	trx, err := services.CreateDepositIntent(account.ID, req.Amount, req.ExternalID)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Deposit created", fiber.Map{
		"transaction_id": trx.TransactionID,
		"amount":         trx.Amount,
		"status":         trx.Status,
	})
}

type WithdrawRequest struct {
	Amount float64 `json:"amount"`
}

func Withdraw(c *fiber.Ctx) error {
	var req WithdrawRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	trx, err := services.RequestWithdrawal(account.ID, req.Amount)
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Withdrawal requested", fiber.Map{
		"transaction_id": trx.TransactionID,
		"amount":         trx.Amount,
		"status":         trx.Status,
		"balance_after":  helpers.FormatFloat(trx.BalanceAfter, 2),
	})
}

func Transactions(c *fiber.Ctx) error {
	account, ok := c.Locals("account").(models.Account)
	if !ok {
		return helpers.JSONError(c, "INVALID_SESSION")
	}

	trxs, err := services.ListTransactions(account.ID, c.QueryInt("limit", 50))
	if err != nil {
		return helpers.JSONEngineError(c, err)
	}

	return helpers.JSONSuccess(c, "Transactions retrieved", trxs)
}
