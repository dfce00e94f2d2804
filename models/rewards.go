package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	BoxStandard = "standard"
	BoxPremium  = "premium"
)

const (
	RewardUSDT       = "usdt"
	RewardChicken    = "chicken"
	RewardResources  = "resources"
	RewardEggs       = "eggs"
	RewardExtraSpin  = "extra_spin"
	RewardMysteryBox = "mystery_box"
)

// MysteryBoxReward is materialized by the weighted draw when a box is opened.
// The reward stays unapplied until the account claims it, which flips Opened.
type MysteryBoxReward struct {
	gorm.Model

	AccountID     uint           `gorm:"index" json:"account_id"`
	BoxType       string         `gorm:"size:16" json:"box_type"`
	RewardType    string         `gorm:"size:16" json:"reward_type"`
	RewardDetails datatypes.JSON `gorm:"type:jsonb" json:"reward_details"`
	Rarity        string         `gorm:"size:16" json:"rarity"`
	Opened        bool           `json:"opened"`
	ClaimedAt     *time.Time     `json:"claimed_at"`
}

// DailyReward is one row per account per calendar day. Re-requesting the same
// day returns the existing row instead of drawing again.
type DailyReward struct {
	gorm.Model

	AccountID     uint           `gorm:"index:idx_account_reward_date,unique" json:"account_id"`
	RewardDate    string         `gorm:"size:10;index:idx_account_reward_date,unique" json:"reward_date"`
	StreakDay     int            `json:"streak_day"`
	RewardType    string         `gorm:"size:16" json:"reward_type"`
	RewardDetails datatypes.JSON `gorm:"type:jsonb" json:"reward_details"`
	Claimed       bool           `json:"claimed"`
	ClaimedAt     *time.Time     `json:"claimed_at"`
}

// SpinHistory is a pure audit log; spin payouts are applied at spin time.
type SpinHistory struct {
	gorm.Model

	AccountID     uint           `gorm:"index" json:"account_id"`
	SpinType      string         `gorm:"size:8" json:"spin_type"`
	RewardType    string         `gorm:"size:16" json:"reward_type"`
	RewardDetails datatypes.JSON `gorm:"type:jsonb" json:"reward_details"`
}
