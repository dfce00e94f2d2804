package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

// milestoneLadder maps cumulative referral earnings thresholds to one-time
// bonus amounts. Ascending; crossings are non-retractable.
var milestoneLadder = []struct {
	Threshold float64
	Reward    float64
}{
	{1000, 50},
	{10000, 500},
	{50000, 2500},
	{100000, 5000},
}

// checkMilestones creates an unclaimed MilestoneReward for every threshold
// the new total has crossed that does not already have a row. Runs inside
// the commission fan-out transaction.
func checkMilestones(tx *gorm.DB, accountID uint, totalReferralEarnings float64) error {
	for _, m := range milestoneLadder {
		if totalReferralEarnings < m.Threshold {
			break
		}

		var count int64
		if err := tx.Model(&models.MilestoneReward{}).
			Where("account_id = ? AND milestone = ?", accountID, m.Threshold).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		reward := models.MilestoneReward{
			AccountID: accountID,
			Milestone: m.Threshold,
			Reward:    m.Reward,
		}
		if err := tx.Create(&reward).Error; err != nil {
			return err
		}
	}
	return nil
}

// ClaimMilestoneReward credits the bonus and flips the claim flag once.
func ClaimMilestoneReward(accountID uint, rewardID uint) (float64, error) {
	amount := 0.0

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var reward models.MilestoneReward
		if err := tx.Where("id = ? AND account_id = ?", rewardID, accountID).
			First(&reward).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: milestone reward %d", ErrNotFound, rewardID)
			}
			return err
		}

		now := timeNow()
		res := tx.Model(&models.MilestoneReward{}).
			Where("id = ? AND claimed = ?", reward.ID, false).
			Updates(map[string]interface{}{"claimed": true, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: milestone reward %d", ErrAlreadyClaimed, rewardID)
		}

		amount = reward.Reward
		_, err := creditLocked(tx, accountID, amount, models.TrxBonus,
			fmt.Sprintf("Milestone bonus %.0f", reward.Milestone))
		return err
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// ListMilestoneRewards returns all milestone rows for an account.
func ListMilestoneRewards(accountID uint) ([]models.MilestoneReward, error) {
	var rewards []models.MilestoneReward
	err := database.DB.Where("account_id = ?", accountID).Order("milestone").Find(&rewards).Error
	return rewards, err
}
