package services

import (
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

// BuyResource debits the ledger for count units of water or wheat and credits
// the bundle in one transaction.
func BuyResource(accountID uint, resource string, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidConfiguration)
	}

	var itemType string
	var delta ResourceDelta
	switch resource {
	case "water":
		itemType = ItemWaterBucket
		delta.Water = count
	case "wheat":
		itemType = ItemWheatBag
		delta.Wheat = count
	default:
		return fmt.Errorf("%w: resource %q", ErrInvalidConfiguration, resource)
	}

	price, err := Prices.Get(itemType)
	if err != nil {
		return err
	}
	cost := price * float64(count)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := debitLocked(tx, accountID, cost, models.TrxPurchase, models.TrxCompleted,
			fmt.Sprintf("Buy %d %s", count, resource)); err != nil {
			return err
		}
		return applyResourceDelta(tx, accountID, delta)
	})
}

// SellEggs converts eggs to USDT at the current egg price.
func SellEggs(accountID uint, count int) (float64, error) {
	if count <= 0 {
		return 0, fmt.Errorf("%w: count must be positive", ErrInvalidConfiguration)
	}

	price, err := Prices.Get(ItemEgg)
	if err != nil {
		return 0, err
	}
	payout := price * float64(count)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := applyResourceDelta(tx, accountID, ResourceDelta{Eggs: -count}); err != nil {
			return err
		}
		_, err := creditLocked(tx, accountID, payout, models.TrxSale,
			fmt.Sprintf("Sell %d eggs", count))
		return err
	})
	if err != nil {
		return 0, err
	}
	return payout, nil
}
