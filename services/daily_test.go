package services

import (
	"testing"
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDailyRewardFirstDay(t *testing.T) {
	setupTestDB(t)
	seedRand(t, 1)
	setNow(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	account := mustAccount(t, "daily1", "DLYA0001", nil)

	reward, err := GetDailyReward(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reward.StreakDay)
	assert.Equal(t, "2026-06-01", reward.RewardDate)
	assert.False(t, reward.Claimed)

	var fresh models.Account
	require.NoError(t, database.DB.First(&fresh, account.ID).Error)
	assert.Equal(t, 1, fresh.CurrentStreak)
	require.NotNil(t, fresh.LastDailyRewardAt)
}

func TestDailyRewardSameDayReturnsExistingRow(t *testing.T) {
	setupTestDB(t)
	seedRand(t, 1)
	setNow(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	account := mustAccount(t, "daily2", "DLYB0001", nil)

	first, err := GetDailyReward(account.ID)
	require.NoError(t, err)

	setNow(t, time.Date(2026, 6, 1, 23, 59, 0, 0, time.UTC))
	second, err := GetDailyReward(account.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, database.DB.Model(&models.DailyReward{}).
		Where("account_id = ?", account.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestDailyRewardStreakAdvancesOnConsecutiveDays(t *testing.T) {
	setupTestDB(t)
	seedRand(t, 1)
	account := mustAccount(t, "daily3", "DLYC0001", nil)

	for day := 1; day <= 7; day++ {
		setNow(t, time.Date(2026, 6, day, 8, 0, 0, 0, time.UTC))
		reward, err := GetDailyReward(account.ID)
		require.NoError(t, err)
		assert.Equal(t, day, reward.StreakDay)
	}

	// Day 8 wraps back to the day-1 table.
	setNow(t, time.Date(2026, 6, 8, 8, 0, 0, 0, time.UTC))
	reward, err := GetDailyReward(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reward.StreakDay)

	var fresh models.Account
	require.NoError(t, database.DB.First(&fresh, account.ID).Error)
	assert.Equal(t, 8, fresh.CurrentStreak)
}

func TestDailyRewardStreakResetsAfterGap(t *testing.T) {
	setupTestDB(t)
	seedRand(t, 1)
	account := mustAccount(t, "daily4", "DLYD0001", nil)

	setNow(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	_, err := GetDailyReward(account.ID)
	require.NoError(t, err)

	setNow(t, time.Date(2026, 6, 2, 8, 0, 0, 0, time.UTC))
	reward, err := GetDailyReward(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, reward.StreakDay)

	// Skipping June 3rd drops the streak back to day 1.
	setNow(t, time.Date(2026, 6, 4, 8, 0, 0, 0, time.UTC))
	reward, err = GetDailyReward(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, reward.StreakDay)
}

func TestClaimDailyRewardAppliesOnce(t *testing.T) {
	setupTestDB(t)
	seedRand(t, 1)
	setNow(t, time.Date(2026, 6, 1, 8, 0, 0, 0, time.UTC))
	account := mustAccount(t, "daily5", "DLYE0001", nil)

	reward, err := GetDailyReward(account.ID)
	require.NoError(t, err)

	applied, err := ClaimDailyReward(account.ID, reward.ID)
	require.NoError(t, err)

	// Day 1 rewards are always one water bucket or one wheat bag.
	require.Equal(t, models.RewardResources, applied.Kind)
	assert.Equal(t, 1, applied.Count)

	bundle, err := GetOrCreateBundle(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bundle.WaterBuckets+bundle.WheatBags)

	_, err = ClaimDailyReward(account.ID, reward.ID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	bundle, err = GetOrCreateBundle(account.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, bundle.WaterBuckets+bundle.WheatBags)
}

func TestClaimDailyRewardExtraSpin(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "daily6", "DLYF0001", nil)

	row := models.DailyReward{
		AccountID:     account.ID,
		RewardDate:    "2026-06-06",
		StreakDay:     6,
		RewardType:    models.RewardExtraSpin,
		RewardDetails: Reward{Kind: models.RewardExtraSpin, Count: 1}.Details(),
	}
	require.NoError(t, database.DB.Create(&row).Error)

	applied, err := ClaimDailyReward(account.ID, row.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RewardExtraSpin, applied.Kind)

	var fresh models.Account
	require.NoError(t, database.DB.First(&fresh, account.ID).Error)
	assert.Equal(t, 1, fresh.ExtraSpinsAvailable)
}
