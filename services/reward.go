package services

import (
	"encoding/json"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Reward is the tagged variant shared by the daily reward, spin wheel and
// mystery box. Exactly one of the value fields is meaningful per Kind.
type Reward struct {
	Kind        string  `json:"kind"`
	Amount      float64 `json:"amount,omitempty"`       // usdt
	ChickenType string  `json:"chicken_type,omitempty"` // chicken
	Resource    string  `json:"resource,omitempty"`     // resources: "water" or "wheat"
	Count       int     `json:"count,omitempty"`        // resources, eggs, extra_spin, mystery_box
	Rarity      string  `json:"rarity,omitempty"`
}

func (r Reward) Details() datatypes.JSON {
	b, _ := json.Marshal(r)
	return datatypes.JSON(b)
}

func rewardFromDetails(raw datatypes.JSON) (Reward, error) {
	var r Reward
	if err := json.Unmarshal(raw, &r); err != nil {
		return Reward{}, fmt.Errorf("%w: bad reward details: %v", ErrInvalidConfiguration, err)
	}
	return r, nil
}

// applyReward credits a materialized reward to the right store. Runs inside
// the caller's DB transaction; balance mutations go through creditLocked so
// the transaction log stays complete.
func applyReward(tx *gorm.DB, accountID uint, r Reward, trxType, note string) error {
	switch r.Kind {
	case models.RewardUSDT:
		_, err := creditLocked(tx, accountID, r.Amount, trxType, note)
		return err

	case models.RewardChicken:
		if !validChickenType(r.ChickenType) {
			return fmt.Errorf("%w: chicken type %q", ErrInvalidConfiguration, r.ChickenType)
		}
		return tx.Create(&models.Chicken{AccountID: accountID, Type: r.ChickenType}).Error

	case models.RewardResources:
		switch r.Resource {
		case "water":
			return applyResourceDelta(tx, accountID, ResourceDelta{Water: r.Count})
		case "wheat":
			return applyResourceDelta(tx, accountID, ResourceDelta{Wheat: r.Count})
		}
		return fmt.Errorf("%w: resource %q", ErrInvalidConfiguration, r.Resource)

	case models.RewardEggs:
		return applyResourceDelta(tx, accountID, ResourceDelta{Eggs: r.Count})

	case models.RewardExtraSpin:
		return tx.Model(&models.Account{}).Where("id = ?", accountID).
			Update("extra_spins_available", gorm.Expr("extra_spins_available + ?", r.Count)).Error

	case models.RewardMysteryBox:
		return applyResourceDelta(tx, accountID, ResourceDelta{MysteryBoxes: r.Count})
	}

	return fmt.Errorf("%w: reward kind %q", ErrInvalidConfiguration, r.Kind)
}
