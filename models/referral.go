package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReferralEarning is a commission produced by the upline walk on a confirmed
// deposit. It is created unclaimed; claiming flips the flag once and credits
// the beneficiary's balance.
type ReferralEarning struct {
	gorm.Model

	BeneficiaryID uint            `gorm:"index" json:"beneficiary_id"`
	SourceID      uint            `gorm:"index" json:"source_id"`
	Level         int             `json:"level"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"amount"`
	Claimed       bool            `gorm:"index" json:"claimed"`
	ClaimedAt     *time.Time      `json:"claimed_at"`

	// DepositTrxID links back to the recharge transaction that produced
	// this commission.
	DepositTrxID string `gorm:"size:64;index" json:"deposit_trx_id"`
}

// MilestoneReward is a one-time bonus unlocked when cumulative referral
// earnings cross a fixed threshold. The composite unique index backs up the
// engine's one-row-per-threshold guarantee.
type MilestoneReward struct {
	gorm.Model

	AccountID uint       `gorm:"index:idx_account_milestone,unique" json:"account_id"`
	Milestone float64    `gorm:"index:idx_account_milestone,unique" json:"milestone"`
	Reward    float64    `json:"reward"`
	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at"`
}

// SalaryPayment records the monthly payout. At most one row per account and
// period ("2006-01").
type SalaryPayment struct {
	gorm.Model

	AccountID uint      `gorm:"index:idx_account_period,unique" json:"account_id"`
	Amount    float64   `json:"amount"`
	Period    string    `gorm:"size:7;index:idx_account_period,unique" json:"period"`
	PaidAt    time.Time `json:"paid_at"`
}
