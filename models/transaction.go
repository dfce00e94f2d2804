package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	TrxRecharge   = "recharge"
	TrxWithdrawal = "withdrawal"
	TrxPurchase   = "purchase"
	TrxSale       = "sale"
	TrxBonus      = "bonus"
	TrxCommission = "commission"
	TrxMysteryBox = "mystery_box"
)

const (
	TrxPending   = "pending"
	TrxCompleted = "completed"
	TrxRejected  = "rejected"
)

// Transaction is the append-mostly financial log. Status moves pending ->
// completed/rejected exactly once; a completed recharge is the trigger for
// the first-deposit bonus and commission fan-out.
type Transaction struct {
	gorm.Model

	AccountID uint            `gorm:"index" json:"account_id"`
	TrxType   string          `gorm:"size:16;index" json:"trx_type"`
	Amount    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"amount"`
	Status    string          `gorm:"size:16;index" json:"status"`

	// TransactionID is the external-facing idempotency key.
	TransactionID string `gorm:"uniqueIndex;size:64" json:"transaction_id"`

	BalanceBefore float64 `json:"balance_before"`
	BalanceAfter  float64 `json:"balance_after"`

	Note     string         `gorm:"size:255" json:"note"`
	Metadata datatypes.JSON `gorm:"type:jsonb" json:"metadata"`
}
