package services

import (
	"fmt"
	"sync"

	"github.com/hidogang/chipkuold-sub000/models"
)

// PriceLookup is the narrow interface the purchase paths read prices through.
// The default implementation is an admin-mutable in-memory table; tests swap
// in fixed tables.
type PriceLookup interface {
	Get(itemType string) (float64, error)
}

const (
	ItemChickenBaby    = "chicken_baby"
	ItemChickenRegular = "chicken_regular"
	ItemChickenGolden  = "chicken_golden"
	ItemWaterBucket    = "water_bucket"
	ItemWheatBag       = "wheat_bag"
	ItemEgg            = "egg"
	ItemBoxStandard    = "mystery_box_standard"
	ItemBoxPremium     = "mystery_box_premium"
)

type priceTable struct {
	mu     sync.RWMutex
	prices map[string]float64
}

func newPriceTable() *priceTable {
	return &priceTable{prices: map[string]float64{
		ItemChickenBaby:    10,
		ItemChickenRegular: 25,
		ItemChickenGolden:  100,
		ItemWaterBucket:    0.5,
		ItemWheatBag:       0.8,
		ItemEgg:            0.05,
		ItemBoxStandard:    2,
		ItemBoxPremium:     5,
	}}
}

func (t *priceTable) Get(itemType string) (float64, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	p, ok := t.prices[itemType]
	if !ok {
		return 0, fmt.Errorf("%w: no price for item %q", ErrInvalidConfiguration, itemType)
	}
	return p, nil
}

func (t *priceTable) Set(itemType string, price float64) error {
	if price <= 0 {
		return fmt.Errorf("%w: price must be positive", ErrInvalidConfiguration)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.prices[itemType]; !ok {
		return fmt.Errorf("%w: unknown item %q", ErrInvalidConfiguration, itemType)
	}
	t.prices[itemType] = price
	return nil
}

var Prices PriceLookup = newPriceTable()

// SetPrice is the admin mutation behind PUT /admin/prices.
func SetPrice(itemType string, price float64) error {
	t, ok := Prices.(*priceTable)
	if !ok {
		return fmt.Errorf("%w: price table is read-only", ErrInvalidConfiguration)
	}
	return t.Set(itemType, price)
}

func chickenItemType(chickenType string) (string, error) {
	switch chickenType {
	case models.ChickenBaby:
		return ItemChickenBaby, nil
	case models.ChickenRegular:
		return ItemChickenRegular, nil
	case models.ChickenGolden:
		return ItemChickenGolden, nil
	}
	return "", fmt.Errorf("%w: chicken type %q", ErrInvalidConfiguration, chickenType)
}

func boxItemType(boxType string) (string, error) {
	switch boxType {
	case models.BoxStandard:
		return ItemBoxStandard, nil
	case models.BoxPremium:
		return ItemBoxPremium, nil
	}
	return "", fmt.Errorf("%w: box type %q", ErrInvalidConfiguration, boxType)
}

func validChickenType(t string) bool {
	return t == models.ChickenBaby || t == models.ChickenRegular || t == models.ChickenGolden
}
