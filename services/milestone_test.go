package services

import (
	"testing"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMilestoneCrossingCreatesReward(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "climber", "CLMB0001", nil)

	// 950 → 1050 crosses the first threshold exactly once.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return checkMilestones(tx, account.ID, 950)
	})
	require.NoError(t, err)

	rewards, err := ListMilestoneRewards(account.ID)
	require.NoError(t, err)
	assert.Empty(t, rewards)

	err = database.DB.Transaction(func(tx *gorm.DB) error {
		return checkMilestones(tx, account.ID, 1050)
	})
	require.NoError(t, err)

	rewards, err = ListMilestoneRewards(account.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 1)
	assert.Equal(t, 1000.0, rewards[0].Milestone)
	assert.Equal(t, 50.0, rewards[0].Reward)
	assert.False(t, rewards[0].Claimed)
}

func TestMilestoneNotDuplicatedOnRecheck(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "steady", "STDY0001", nil)

	for _, total := range []float64{1050, 1100, 1200} {
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			return checkMilestones(tx, account.ID, total)
		})
		require.NoError(t, err)
	}

	rewards, err := ListMilestoneRewards(account.ID)
	require.NoError(t, err)
	assert.Len(t, rewards, 1)
}

func TestMilestoneJumpGrantsEveryCrossedThreshold(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "whale", "WHAL0001", nil)

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return checkMilestones(tx, account.ID, 60000)
	})
	require.NoError(t, err)

	rewards, err := ListMilestoneRewards(account.ID)
	require.NoError(t, err)
	require.Len(t, rewards, 3)
	assert.Equal(t, 1000.0, rewards[0].Milestone)
	assert.Equal(t, 10000.0, rewards[1].Milestone)
	assert.Equal(t, 50000.0, rewards[2].Milestone)
}

func TestClaimMilestoneReward(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "winner", "WINN0001", nil)

	reward := models.MilestoneReward{AccountID: account.ID, Milestone: 1000, Reward: 50}
	require.NoError(t, database.DB.Create(&reward).Error)

	amount, err := ClaimMilestoneReward(account.ID, reward.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, amount)
	assert.Equal(t, 50.0, accountBalance(t, account.ID))

	_, err = ClaimMilestoneReward(account.ID, reward.ID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)
	assert.Equal(t, 50.0, accountBalance(t, account.ID))
}

func TestClaimForeignMilestoneReward(t *testing.T) {
	setupTestDB(t)
	owner := mustAccount(t, "owner", "OWNR0001", nil)
	other := mustAccount(t, "other", "OTHR0001", nil)

	reward := models.MilestoneReward{AccountID: owner.ID, Milestone: 1000, Reward: 50}
	require.NoError(t, database.DB.Create(&reward).Error)

	_, err := ClaimMilestoneReward(other.ID, reward.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
