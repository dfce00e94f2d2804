package models

import (
	"time"

	"gorm.io/gorm"
)

type Account struct {
	gorm.Model

	Username     string `gorm:"uniqueIndex;size:64" json:"username"`
	PasswordHash string `gorm:"size:128" json:"-"`

	USDTBalance float64 `json:"usdt_balance"`

	// ReferralCode is assigned once at registration and never changes.
	// ReferredBy holds the referral code of the referrer; it is set at
	// registration or never, so the referral structure stays a forest.
	ReferralCode string  `gorm:"uniqueIndex;size:16" json:"referral_code"`
	ReferredBy   *string `gorm:"index;size:16" json:"referred_by"`

	TotalReferralEarnings float64 `json:"total_referral_earnings"`
	TotalTeamEarnings     float64 `json:"total_team_earnings"`

	LastSalaryPaidAt    *time.Time `json:"last_salary_paid_at"`
	CurrentStreak       int        `json:"current_streak"`
	LastDailyRewardAt   *time.Time `json:"last_daily_reward_at"`
	LastSpinAt          *time.Time `json:"last_spin_at"`
	ExtraSpinsAvailable int        `json:"extra_spins_available"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	Transactions []Transaction `gorm:"foreignKey:AccountID" json:"-"`
	Chickens     []Chicken     `gorm:"foreignKey:AccountID" json:"-"`
}

// ResourceBundle holds an account's fungible farm resources. Exactly one
// bundle per account, created lazily on first access.
type ResourceBundle struct {
	gorm.Model

	AccountID    uint `gorm:"uniqueIndex" json:"account_id"`
	WaterBuckets int  `json:"water_buckets"`
	WheatBags    int  `json:"wheat_bags"`
	Eggs         int  `json:"eggs"`
	MysteryBoxes int  `json:"mystery_boxes"`
}
