package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

// ResourceDelta is an additive update to a bundle; negative fields consume.
type ResourceDelta struct {
	Water        int
	Wheat        int
	Eggs         int
	MysteryBoxes int
}

func getOrCreateBundle(tx *gorm.DB, accountID uint) (*models.ResourceBundle, error) {
	var bundle models.ResourceBundle
	err := lockForUpdate(tx).Where("account_id = ?", accountID).First(&bundle).Error
	if err == nil {
		return &bundle, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bundle = models.ResourceBundle{AccountID: accountID}
	if err := tx.Create(&bundle).Error; err != nil {
		return nil, err
	}
	return &bundle, nil
}

// applyResourceDelta updates the bundle inside the caller's transaction.
// Any field that would go negative fails the whole delta.
func applyResourceDelta(tx *gorm.DB, accountID uint, d ResourceDelta) error {
	bundle, err := getOrCreateBundle(tx, accountID)
	if err != nil {
		return err
	}

	water := bundle.WaterBuckets + d.Water
	wheat := bundle.WheatBags + d.Wheat
	eggs := bundle.Eggs + d.Eggs
	boxes := bundle.MysteryBoxes + d.MysteryBoxes

	if water < 0 || wheat < 0 || eggs < 0 || boxes < 0 {
		return fmt.Errorf("%w: water=%d wheat=%d eggs=%d boxes=%d",
			ErrInsufficientResources, water, wheat, eggs, boxes)
	}

	bundle.WaterBuckets = water
	bundle.WheatBags = wheat
	bundle.Eggs = eggs
	bundle.MysteryBoxes = boxes
	return tx.Save(bundle).Error
}

// GetOrCreateBundle returns the account's bundle, creating a zeroed one on
// first access.
func GetOrCreateBundle(accountID uint) (*models.ResourceBundle, error) {
	var bundle *models.ResourceBundle
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		bundle, err = getOrCreateBundle(tx, accountID)
		return err
	})
	return bundle, err
}

// ApplyResourceDelta applies an additive update as its own transaction.
func ApplyResourceDelta(accountID uint, d ResourceDelta) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return applyResourceDelta(tx, accountID, d)
	})
}
