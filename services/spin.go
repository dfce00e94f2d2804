package services

import (
	"fmt"
	"time"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

const (
	SpinDailyType = "daily"
	SpinSuperType = "super"
)

var dailySpinTable = []WeightedEntry{
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.1}, Weight: 30},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.2}, Weight: 25},
	{Reward: Reward{Kind: models.RewardResources, Resource: "water", Count: 1}, Weight: 15},
	{Reward: Reward{Kind: models.RewardResources, Resource: "wheat", Count: 1}, Weight: 12},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.5}, Weight: 10},
	{Reward: Reward{Kind: models.RewardEggs, Count: 2}, Weight: 5},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 1}, Weight: 2},
	{Reward: Reward{Kind: models.RewardExtraSpin, Count: 1}, Weight: 1},
}

var superSpinTable = []WeightedEntry{
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.5}, Weight: 30},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 1}, Weight: 25},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 2}, Weight: 20},
	{Reward: Reward{Kind: models.RewardEggs, Count: 5}, Weight: 10},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 5}, Weight: 8},
	{Reward: Reward{Kind: models.RewardMysteryBox, Count: 1}, Weight: 4},
	{Reward: Reward{Kind: models.RewardChicken, ChickenType: models.ChickenBaby}, Weight: 2},
	{Reward: Reward{Kind: models.RewardUSDT, Amount: 10}, Weight: 1},
}

// SpinDaily runs the free daily spin. The UTC-midnight gate is checked first;
// only when today's free spin is spent does an extra spin get consumed.
func SpinDaily(accountID uint) (*Reward, error) {
	var won Reward

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		now := timeNow()
		midnight := now.Truncate(24 * time.Hour)

		switch {
		case account.LastSpinAt == nil || account.LastSpinAt.Before(midnight):
			account.LastSpinAt = &now
		case account.ExtraSpinsAvailable > 0:
			account.ExtraSpinsAvailable--
		default:
			return fmt.Errorf("%w: next free spin after %s", ErrNoSpinsAvailable,
				midnight.AddDate(0, 0, 1).Format(time.RFC3339))
		}
		if err := tx.Save(account).Error; err != nil {
			return err
		}

		won = drawWeighted(dailySpinTable)
		if err := applyReward(tx, accountID, won, models.TrxBonus, "Daily spin reward"); err != nil {
			return err
		}

		history := models.SpinHistory{
			AccountID:     accountID,
			SpinType:      SpinDailyType,
			RewardType:    won.Kind,
			RewardDetails: won.Details(),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return &won, nil
}

// SpinSuper debits the flat spin cost up front and draws from the richer
// table. The payout applies immediately, same as the daily spin.
func SpinSuper(accountID uint) (*Reward, error) {
	var won Reward
	cost := config.Get().SuperSpinCost

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := debitLocked(tx, accountID, cost, models.TrxPurchase, models.TrxCompleted,
			"Super spin"); err != nil {
			return err
		}

		won = drawWeighted(superSpinTable)
		if err := applyReward(tx, accountID, won, models.TrxBonus, "Super spin reward"); err != nil {
			return err
		}

		history := models.SpinHistory{
			AccountID:     accountID,
			SpinType:      SpinSuperType,
			RewardType:    won.Kind,
			RewardDetails: won.Details(),
		}
		return tx.Create(&history).Error
	})
	if err != nil {
		return nil, err
	}
	return &won, nil
}

// ListSpinHistory returns the account's most recent spins.
func ListSpinHistory(accountID uint, limit int) ([]models.SpinHistory, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	var spins []models.SpinHistory
	err := database.DB.Where("account_id = ?", accountID).
		Order("id DESC").Limit(limit).Find(&spins).Error
	return spins, err
}
