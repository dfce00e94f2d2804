package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

// dailyRewardTables is the streak-indexed reward schedule. Day 7 wraps back
// to day 1 on the next claim.
var dailyRewardTables = map[int][]WeightedEntry{
	1: {
		{Reward: Reward{Kind: models.RewardResources, Resource: "water", Count: 1}, Weight: 60},
		{Reward: Reward{Kind: models.RewardResources, Resource: "wheat", Count: 1}, Weight: 40},
	},
	2: {
		{Reward: Reward{Kind: models.RewardResources, Resource: "wheat", Count: 2}, Weight: 50},
		{Reward: Reward{Kind: models.RewardResources, Resource: "water", Count: 2}, Weight: 30},
		{Reward: Reward{Kind: models.RewardEggs, Count: 1}, Weight: 20},
	},
	3: {
		{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.2}, Weight: 50},
		{Reward: Reward{Kind: models.RewardResources, Resource: "water", Count: 3}, Weight: 50},
	},
	4: {
		{Reward: Reward{Kind: models.RewardEggs, Count: 3}, Weight: 60},
		{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.3}, Weight: 40},
	},
	5: {
		{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.5}, Weight: 50},
		{Reward: Reward{Kind: models.RewardResources, Resource: "wheat", Count: 4}, Weight: 50},
	},
	6: {
		{Reward: Reward{Kind: models.RewardExtraSpin, Count: 1}, Weight: 70},
		{Reward: Reward{Kind: models.RewardUSDT, Amount: 0.5}, Weight: 30},
	},
	7: {
		{Reward: Reward{Kind: models.RewardMysteryBox, Count: 1}, Weight: 50},
		{Reward: Reward{Kind: models.RewardUSDT, Amount: 1}, Weight: 30},
		{Reward: Reward{Kind: models.RewardChicken, ChickenType: models.ChickenBaby}, Weight: 20},
	},
}

const dateLayout = "2006-01-02"

// GetDailyReward materializes today's login reward, or returns the existing
// row if one was already drawn today. The streak only advances when the
// previous reward day was exactly yesterday.
func GetDailyReward(accountID uint) (*models.DailyReward, error) {
	now := timeNow()
	today := now.Format(dateLayout)

	var existing models.DailyReward
	err := database.DB.Where("account_id = ? AND reward_date = ?", accountID, today).
		First(&existing).Error
	if err == nil {
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var reward models.DailyReward
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}

		streak := 1
		if account.LastDailyRewardAt != nil {
			yesterday := now.AddDate(0, 0, -1).Format(dateLayout)
			if account.LastDailyRewardAt.Format(dateLayout) == yesterday {
				streak = account.CurrentStreak + 1
			}
		}
		streakDay := ((streak - 1) % 7) + 1

		drawn := drawWeighted(dailyRewardTables[streakDay])
		reward = models.DailyReward{
			AccountID:     accountID,
			RewardDate:    today,
			StreakDay:     streakDay,
			RewardType:    drawn.Kind,
			RewardDetails: drawn.Details(),
		}
		if err := tx.Create(&reward).Error; err != nil {
			// Unique (account, date) index lost a race; surface as a
			// retryable conflict so the caller re-reads.
			return fmt.Errorf("%w: daily reward for %s", ErrConflict, today)
		}

		account.CurrentStreak = streak
		account.LastDailyRewardAt = &now
		return tx.Save(account).Error
	})
	if err != nil {
		if errors.Is(err, ErrConflict) {
			if err2 := database.DB.Where("account_id = ? AND reward_date = ?", accountID, today).
				First(&existing).Error; err2 == nil {
				return &existing, nil
			}
		}
		return nil, err
	}
	return &reward, nil
}

// ClaimDailyReward applies a materialized daily reward once.
func ClaimDailyReward(accountID uint, rewardID uint) (*Reward, error) {
	var applied Reward

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var row models.DailyReward
		if err := tx.Where("id = ? AND account_id = ?", rewardID, accountID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: daily reward %d", ErrNotFound, rewardID)
			}
			return err
		}

		now := timeNow()
		res := tx.Model(&models.DailyReward{}).
			Where("id = ? AND claimed = ?", row.ID, false).
			Updates(map[string]interface{}{"claimed": true, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: daily reward %d", ErrAlreadyClaimed, rewardID)
		}

		reward, err := rewardFromDetails(row.RewardDetails)
		if err != nil {
			return err
		}
		applied = reward

		return applyReward(tx, accountID, reward, models.TrxBonus,
			fmt.Sprintf("Daily reward day %d", row.StreakDay))
	})
	if err != nil {
		return nil, err
	}
	return &applied, nil
}
