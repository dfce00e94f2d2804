package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

const sellRate = 0.75

type chickenSpec struct {
	Cooldown  time.Duration
	EggYield  int
	WaterCost int
	WheatCost int
}

var chickenSpecs = map[string]chickenSpec{
	models.ChickenBaby:    {Cooldown: 6 * time.Hour, EggYield: 2, WaterCost: 1, WheatCost: 1},
	models.ChickenRegular: {Cooldown: 5 * time.Hour, EggYield: 5, WaterCost: 2, WheatCost: 2},
	models.ChickenGolden:  {Cooldown: 3 * time.Hour, EggYield: 20, WaterCost: 4, WheatCost: 4},
}

// ChickenReadyAt reports when a chicken can hatch next. A chicken that has
// never hatched is ready immediately.
func ChickenReadyAt(c *models.Chicken) time.Time {
	if c.LastHatchTime == nil {
		return time.Time{}
	}
	return c.LastHatchTime.Add(chickenSpecs[c.Type].Cooldown)
}

// BuyChicken debits the type's current price and creates the asset in one
// transaction, so a failed debit never leaves an orphan chicken.
func BuyChicken(accountID uint, chickenType string) (*models.Chicken, error) {
	itemType, err := chickenItemType(chickenType)
	if err != nil {
		return nil, err
	}
	price, err := Prices.Get(itemType)
	if err != nil {
		return nil, err
	}

	var chicken models.Chicken
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := debitLocked(tx, accountID, price, models.TrxPurchase, models.TrxCompleted,
			fmt.Sprintf("Buy %s chicken", chickenType)); err != nil {
			return err
		}

		chicken = models.Chicken{AccountID: accountID, Type: chickenType}
		return tx.Create(&chicken).Error
	})
	if err != nil {
		return nil, err
	}
	return &chicken, nil
}

// HatchChicken consumes the type's water/wheat cost, enforces the cooldown
// and credits the egg yield to the inventory.
func HatchChicken(accountID uint, chickenID uint) (int, error) {
	spec := chickenSpec{}
	eggs := 0

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var chicken models.Chicken
		if err := lockForUpdate(tx).Where("id = ? AND account_id = ?", chickenID, accountID).
			First(&chicken).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: chicken %d", ErrNotFound, chickenID)
			}
			return err
		}

		spec = chickenSpecs[chicken.Type]
		now := timeNow()

		if chicken.LastHatchTime != nil {
			readyAt := chicken.LastHatchTime.Add(spec.Cooldown)
			if now.Before(readyAt) {
				return fmt.Errorf("%w: chicken %d cooling until %s", ErrConflict, chickenID, readyAt.Format(time.RFC3339))
			}
		}

		if err := applyResourceDelta(tx, accountID, ResourceDelta{
			Water: -spec.WaterCost,
			Wheat: -spec.WheatCost,
		}); err != nil {
			return err
		}

		chicken.LastHatchTime = &now
		if err := tx.Save(&chicken).Error; err != nil {
			return err
		}

		eggs = spec.EggYield
		return applyResourceDelta(tx, accountID, ResourceDelta{Eggs: eggs})
	})
	if err != nil {
		return 0, err
	}
	return eggs, nil
}

// SellChicken removes the asset and credits 75% of the current price.
func SellChicken(accountID uint, chickenID uint) (float64, error) {
	payout := 0.0

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var chicken models.Chicken
		if err := lockForUpdate(tx).Where("id = ? AND account_id = ?", chickenID, accountID).
			First(&chicken).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: chicken %d", ErrNotFound, chickenID)
			}
			return err
		}

		itemType, err := chickenItemType(chicken.Type)
		if err != nil {
			return err
		}
		price, err := Prices.Get(itemType)
		if err != nil {
			return err
		}
		payout = price * sellRate

		if err := tx.Delete(&chicken).Error; err != nil {
			return err
		}

		_, err = creditLocked(tx, accountID, payout, models.TrxSale,
			fmt.Sprintf("Sell %s chicken #%d", chicken.Type, chicken.ID))
		return err
	})
	if err != nil {
		return 0, err
	}
	return payout, nil
}

// ListChickens returns the account's flock.
func ListChickens(accountID uint) ([]models.Chicken, error) {
	var chickens []models.Chicken
	err := database.DB.Where("account_id = ?", accountID).Order("id").Find(&chickens).Error
	return chickens, err
}
