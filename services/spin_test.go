package services

import (
	"testing"
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubSpinTables pins both wheels to a single fixed payout so the draw is
// deterministic.
func stubSpinTables(t *testing.T, daily, super Reward) {
	t.Helper()
	oldDaily, oldSuper := dailySpinTable, superSpinTable
	dailySpinTable = []WeightedEntry{{Reward: daily, Weight: 100}}
	superSpinTable = []WeightedEntry{{Reward: super, Weight: 100}}
	t.Cleanup(func() {
		dailySpinTable = oldDaily
		superSpinTable = oldSuper
	})
}

func grantExtraSpins(t *testing.T, accountID uint, n int) {
	t.Helper()
	require.NoError(t, database.DB.Model(&models.Account{}).
		Where("id = ?", accountID).Update("extra_spins_available", n).Error)
}

func extraSpins(t *testing.T, accountID uint) int {
	t.Helper()
	var account models.Account
	require.NoError(t, database.DB.First(&account, accountID).Error)
	return account.ExtraSpinsAvailable
}

func TestSpinDailyGateThenExtraSpins(t *testing.T) {
	setupTestDB(t)
	stubSpinTables(t,
		Reward{Kind: models.RewardUSDT, Amount: 0.1},
		Reward{Kind: models.RewardUSDT, Amount: 0.5})
	setNow(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	account := mustAccount(t, "spinner", "SPIN0001", nil)

	// Free spin for the day.
	won, err := SpinDaily(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.1, won.Amount)
	assert.Equal(t, 0.1, accountBalance(t, account.ID))

	// Second spin the same day needs an extra spin.
	_, err = SpinDaily(account.ID)
	require.ErrorIs(t, err, ErrNoSpinsAvailable)

	grantExtraSpins(t, account.ID, 2)
	_, err = SpinDaily(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, extraSpins(t, account.ID))
	assert.Equal(t, 0.2, accountBalance(t, account.ID))

	// Next day the free spin is back; the remaining extra spin is untouched.
	setNow(t, time.Date(2026, 7, 2, 0, 30, 0, 0, time.UTC))
	_, err = SpinDaily(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, extraSpins(t, account.ID))
}

func TestSpinDailyExhaustsExtraSpins(t *testing.T) {
	setupTestDB(t)
	stubSpinTables(t,
		Reward{Kind: models.RewardUSDT, Amount: 0.1},
		Reward{Kind: models.RewardUSDT, Amount: 0.5})
	setNow(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	account := mustAccount(t, "spinner2", "SPIN0002", nil)
	grantExtraSpins(t, account.ID, 1)

	_, err := SpinDaily(account.ID) // free
	require.NoError(t, err)
	assert.Equal(t, 1, extraSpins(t, account.ID))

	_, err = SpinDaily(account.ID) // extra
	require.NoError(t, err)
	assert.Equal(t, 0, extraSpins(t, account.ID))

	_, err = SpinDaily(account.ID)
	assert.ErrorIs(t, err, ErrNoSpinsAvailable)
}

func TestSpinDailyWritesHistory(t *testing.T) {
	setupTestDB(t)
	stubSpinTables(t,
		Reward{Kind: models.RewardResources, Resource: "water", Count: 1},
		Reward{Kind: models.RewardUSDT, Amount: 0.5})
	setNow(t, time.Date(2026, 7, 1, 10, 0, 0, 0, time.UTC))
	account := mustAccount(t, "spinner3", "SPIN0003", nil)

	won, err := SpinDaily(account.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RewardResources, won.Kind)

	bundle, err := GetOrCreateBundle(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bundle.WaterBuckets)

	spins, err := ListSpinHistory(account.ID, 10)
	require.NoError(t, err)
	require.Len(t, spins, 1)
	assert.Equal(t, SpinDailyType, spins[0].SpinType)
	assert.Equal(t, models.RewardResources, spins[0].RewardType)
}

func TestSpinSuperDebitsCost(t *testing.T) {
	setupTestDB(t)
	stubSpinTables(t,
		Reward{Kind: models.RewardUSDT, Amount: 0.1},
		Reward{Kind: models.RewardUSDT, Amount: 0.5})
	account := mustAccount(t, "highroller", "ROLL0001", nil)
	mustFund(t, account.ID, 10)

	won, err := SpinSuper(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 0.5, won.Amount)
	// 10 - 1 cost + 0.5 payout.
	assert.Equal(t, 9.5, accountBalance(t, account.ID))

	spins, err := ListSpinHistory(account.ID, 10)
	require.NoError(t, err)
	require.Len(t, spins, 1)
	assert.Equal(t, SpinSuperType, spins[0].SpinType)
}

func TestSpinSuperInsufficientFunds(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "broke", "BRKE0001", nil)
	mustFund(t, account.ID, 0.5)

	_, err := SpinSuper(account.ID)
	require.ErrorIs(t, err, ErrInsufficientFunds)
	assert.Equal(t, 0.5, accountBalance(t, account.ID))

	spins, err := ListSpinHistory(account.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, spins)
}
