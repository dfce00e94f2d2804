package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChickenBaby    = "baby"
	ChickenRegular = "regular"
	ChickenGolden  = "golden"
)

type Chicken struct {
	gorm.Model

	AccountID uint   `gorm:"index" json:"account_id"`
	Type      string `gorm:"size:16" json:"type"`

	// LastHatchTime is nil for a chicken that has never hatched; such a
	// chicken is immediately ready.
	LastHatchTime *time.Time `json:"last_hatch_time"`
}
