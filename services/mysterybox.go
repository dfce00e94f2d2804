package services

import (
	"errors"
	"fmt"
	"math"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

const (
	RarityCommon    = "common"
	RarityRare      = "rare"
	RarityEpic      = "epic"
	RarityLegendary = "legendary"
)

// boxOutcome is one weighted range inside a reward category. USDT outcomes
// roll an amount in [MinAmt, MaxAmt]; egg/resource outcomes roll a count in
// [MinCnt, MaxCnt]; chicken outcomes grant a fixed type.
type boxOutcome struct {
	Resource       string
	ChickenType    string
	MinAmt, MaxAmt float64
	MinCnt, MaxCnt int
	Rarity         string
	Weight         float64
}

type boxCategory struct {
	Kind     string
	Weight   float64
	Outcomes []boxOutcome
}

var boxTables = map[string][]boxCategory{
	models.BoxStandard: {
		{Kind: models.RewardUSDT, Weight: 40, Outcomes: []boxOutcome{
			{MinAmt: 0.5, MaxAmt: 1, Rarity: RarityCommon, Weight: 60},
			{MinAmt: 1, MaxAmt: 2, Rarity: RarityRare, Weight: 30},
			{MinAmt: 2, MaxAmt: 5, Rarity: RarityEpic, Weight: 10},
		}},
		{Kind: models.RewardResources, Weight: 30, Outcomes: []boxOutcome{
			{Resource: "water", MinCnt: 1, MaxCnt: 3, Rarity: RarityCommon, Weight: 50},
			{Resource: "wheat", MinCnt: 1, MaxCnt: 3, Rarity: RarityCommon, Weight: 50},
		}},
		{Kind: models.RewardEggs, Weight: 20, Outcomes: []boxOutcome{
			{MinCnt: 2, MaxCnt: 5, Rarity: RarityCommon, Weight: 70},
			{MinCnt: 5, MaxCnt: 10, Rarity: RarityRare, Weight: 30},
		}},
		{Kind: models.RewardChicken, Weight: 10, Outcomes: []boxOutcome{
			{ChickenType: models.ChickenBaby, Rarity: RarityCommon, Weight: 80},
			{ChickenType: models.ChickenRegular, Rarity: RarityRare, Weight: 20},
		}},
	},
	models.BoxPremium: {
		{Kind: models.RewardUSDT, Weight: 35, Outcomes: []boxOutcome{
			{MinAmt: 1, MaxAmt: 3, Rarity: RarityCommon, Weight: 50},
			{MinAmt: 3, MaxAmt: 6, Rarity: RarityRare, Weight: 35},
			{MinAmt: 6, MaxAmt: 15, Rarity: RarityEpic, Weight: 12},
			{MinAmt: 15, MaxAmt: 50, Rarity: RarityLegendary, Weight: 3},
		}},
		{Kind: models.RewardEggs, Weight: 25, Outcomes: []boxOutcome{
			{MinCnt: 5, MaxCnt: 15, Rarity: RarityRare, Weight: 70},
			{MinCnt: 15, MaxCnt: 30, Rarity: RarityEpic, Weight: 30},
		}},
		{Kind: models.RewardResources, Weight: 20, Outcomes: []boxOutcome{
			{Resource: "water", MinCnt: 3, MaxCnt: 8, Rarity: RarityCommon, Weight: 50},
			{Resource: "wheat", MinCnt: 3, MaxCnt: 8, Rarity: RarityCommon, Weight: 50},
		}},
		{Kind: models.RewardChicken, Weight: 20, Outcomes: []boxOutcome{
			{ChickenType: models.ChickenRegular, Rarity: RarityRare, Weight: 60},
			{ChickenType: models.ChickenGolden, Rarity: RarityEpic, Weight: 40},
		}},
	},
}

// drawBoxReward runs the nested weighted draw: category first, then the
// range within it.
func drawBoxReward(boxType string) (Reward, error) {
	categories, ok := boxTables[boxType]
	if !ok {
		return Reward{}, fmt.Errorf("%w: box type %q", ErrInvalidConfiguration, boxType)
	}

	catWeights := make([]float64, len(categories))
	for i, c := range categories {
		catWeights[i] = c.Weight
	}
	category := categories[drawIndex(catWeights)]

	outWeights := make([]float64, len(category.Outcomes))
	for i, o := range category.Outcomes {
		outWeights[i] = o.Weight
	}
	outcome := category.Outcomes[drawIndex(outWeights)]

	reward := Reward{Kind: category.Kind, Rarity: outcome.Rarity}
	switch category.Kind {
	case models.RewardUSDT:
		amt := outcome.MinAmt + drawRand.Float64()*(outcome.MaxAmt-outcome.MinAmt)
		reward.Amount = math.Round(amt*100) / 100
	case models.RewardChicken:
		reward.ChickenType = outcome.ChickenType
	case models.RewardResources:
		reward.Resource = outcome.Resource
		reward.Count = outcome.MinCnt + drawRand.Intn(outcome.MaxCnt-outcome.MinCnt+1)
	case models.RewardEggs:
		reward.Count = outcome.MinCnt + drawRand.Intn(outcome.MaxCnt-outcome.MinCnt+1)
	}
	return reward, nil
}

// BuyMysteryBox debits the box price and increments the bundle's box count.
func BuyMysteryBox(accountID uint, boxType string, count int) error {
	if count <= 0 {
		return fmt.Errorf("%w: count must be positive", ErrInvalidConfiguration)
	}

	itemType, err := boxItemType(boxType)
	if err != nil {
		return err
	}
	price, err := Prices.Get(itemType)
	if err != nil {
		return err
	}
	cost := price * float64(count)

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := debitLocked(tx, accountID, cost, models.TrxMysteryBox, models.TrxCompleted,
			fmt.Sprintf("Buy %d %s box", count, boxType)); err != nil {
			return err
		}
		return applyResourceDelta(tx, accountID, ResourceDelta{MysteryBoxes: count})
	})
}

// OpenMysteryBox consumes one box from the bundle and materializes an
// unopened reward row via the weighted draw. The reward stays unapplied
// until claimed.
func OpenMysteryBox(accountID uint, boxType string) (*models.MysteryBoxReward, error) {
	if _, ok := boxTables[boxType]; !ok {
		return nil, fmt.Errorf("%w: box type %q", ErrInvalidConfiguration, boxType)
	}

	var row models.MysteryBoxReward
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		bundle, err := getOrCreateBundle(tx, accountID)
		if err != nil {
			return err
		}
		if bundle.MysteryBoxes < 1 {
			return fmt.Errorf("%w: account %d", ErrNoBoxesAvailable, accountID)
		}
		bundle.MysteryBoxes--
		if err := tx.Save(bundle).Error; err != nil {
			return err
		}

		drawn, err := drawBoxReward(boxType)
		if err != nil {
			return err
		}

		row = models.MysteryBoxReward{
			AccountID:     accountID,
			BoxType:       boxType,
			RewardType:    drawn.Kind,
			RewardDetails: drawn.Details(),
			Rarity:        drawn.Rarity,
		}
		return tx.Create(&row).Error
	})
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// ClaimMysteryBoxReward applies a materialized box reward once and flips the
// opened flag.
func ClaimMysteryBoxReward(accountID uint, rewardID uint) (*Reward, error) {
	var applied Reward

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var row models.MysteryBoxReward
		if err := tx.Where("id = ? AND account_id = ?", rewardID, accountID).
			First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: box reward %d", ErrNotFound, rewardID)
			}
			return err
		}

		now := timeNow()
		res := tx.Model(&models.MysteryBoxReward{}).
			Where("id = ? AND opened = ?", row.ID, false).
			Updates(map[string]interface{}{"opened": true, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: box reward %d", ErrAlreadyClaimed, rewardID)
		}

		reward, err := rewardFromDetails(row.RewardDetails)
		if err != nil {
			return err
		}
		applied = reward

		return applyReward(tx, accountID, reward, models.TrxMysteryBox,
			fmt.Sprintf("%s box reward (%s)", row.BoxType, row.Rarity))
	})
	if err != nil {
		return nil, err
	}
	return &applied, nil
}

// ListMysteryBoxRewards returns the account's box rewards, newest first.
func ListMysteryBoxRewards(accountID uint) ([]models.MysteryBoxReward, error) {
	var rewards []models.MysteryBoxReward
	err := database.DB.Where("account_id = ?", accountID).Order("id DESC").Find(&rewards).Error
	return rewards, err
}
