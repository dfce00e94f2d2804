package services

import (
	"testing"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referralChain builds root ← mid ← leaf ← depositor and returns them in
// upline order as seen from the depositor.
func referralChain(t *testing.T) (depositor, l1, l2, l3 *models.Account) {
	t.Helper()
	l3 = mustAccount(t, "root", "ROOT0001", nil)
	l2 = mustAccount(t, "mid", "MIDD0002", &l3.ReferralCode)
	l1 = mustAccount(t, "leaf", "LEAF0003", &l2.ReferralCode)
	depositor = mustAccount(t, "player", "PLAY0004", &l1.ReferralCode)
	return depositor, l1, l2, l3
}

func TestConfirmDepositCreditsAndFansOut(t *testing.T) {
	setupTestDB(t)
	depositor, l1, l2, l3 := referralChain(t)

	_, err := CreateDepositIntent(depositor.ID, 100, "dep-1")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-1"))

	// 100 deposit + 10% first-deposit bonus.
	assert.Equal(t, 110.0, accountBalance(t, depositor.ID))

	for _, tc := range []struct {
		account *models.Account
		level   int
		amount  float64
		balance float64
	}{
		// l1 also collects the monthly salary: the confirmed deposit made
		// the depositor an active direct referral.
		{l1, 1, 10, 1},
		{l2, 2, 6, 0},
		{l3, 3, 4, 0},
	} {
		earnings, err := ListReferralEarnings(tc.account.ID, false)
		require.NoError(t, err)
		require.Len(t, earnings, 1)
		assert.Equal(t, tc.level, earnings[0].Level)
		assert.Equal(t, tc.amount, earnings[0].Amount.InexactFloat64())
		assert.False(t, earnings[0].Claimed)

		// Commission is earned, not yet claimed to the balance.
		assert.Equal(t, tc.balance, accountBalance(t, tc.account.ID))

		var fresh models.Account
		require.NoError(t, database.DB.First(&fresh, tc.account.ID).Error)
		assert.Equal(t, tc.amount, fresh.TotalReferralEarnings)
	}
}

func TestUplineShorterThanSixLevels(t *testing.T) {
	setupTestDB(t)
	referrer := mustAccount(t, "ref", "REFF0001", nil)
	depositor := mustAccount(t, "dep", "DEPP0002", &referrer.ReferralCode)

	_, err := CreateDepositIntent(depositor.ID, 100, "dep-2")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-2"))

	var count int64
	require.NoError(t, database.DB.Model(&models.ReferralEarning{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFirstDepositBonusOnlyOnce(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "solo", "SOLO0001", nil)

	_, err := CreateDepositIntent(account.ID, 50, "dep-3a")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-3a"))
	assert.Equal(t, 55.0, accountBalance(t, account.ID))

	_, err = CreateDepositIntent(account.ID, 50, "dep-3b")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-3b"))
	assert.Equal(t, 105.0, accountBalance(t, account.ID))

	var bonuses int64
	require.NoError(t, database.DB.Model(&models.Transaction{}).
		Where("account_id = ? AND trx_type = ?", account.ID, models.TrxBonus).
		Count(&bonuses).Error)
	assert.Equal(t, int64(1), bonuses)
}

func TestConfirmDepositIsIdempotent(t *testing.T) {
	setupTestDB(t)
	depositor, l1, _, _ := referralChain(t)

	_, err := CreateDepositIntent(depositor.ID, 100, "dep-4")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-4"))
	require.ErrorIs(t, ConfirmDeposit("dep-4"), ErrConflict)

	assert.Equal(t, 110.0, accountBalance(t, depositor.ID))

	earnings, err := ListReferralEarnings(l1.ID, false)
	require.NoError(t, err)
	assert.Len(t, earnings, 1)
}

func TestRejectDeposit(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "reject", "REJJ0001", nil)

	_, err := CreateDepositIntent(account.ID, 30, "dep-5")
	require.NoError(t, err)
	require.NoError(t, RejectDeposit("dep-5"))

	assert.Equal(t, 0.0, accountBalance(t, account.ID))
	require.ErrorIs(t, ConfirmDeposit("dep-5"), ErrConflict)
}

func TestDuplicateDepositIntent(t *testing.T) {
	setupTestDB(t)
	account := mustAccount(t, "dup", "DUPP0001", nil)

	_, err := CreateDepositIntent(account.ID, 10, "dep-6")
	require.NoError(t, err)
	_, err = CreateDepositIntent(account.ID, 10, "dep-6")
	assert.ErrorIs(t, err, ErrConflict)
}

func TestClaimReferralEarning(t *testing.T) {
	setupTestDB(t)
	depositor, l1, _, _ := referralChain(t)

	_, err := CreateDepositIntent(depositor.ID, 100, "dep-7")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-7"))

	earnings, err := ListReferralEarnings(l1.ID, true)
	require.NoError(t, err)
	require.Len(t, earnings, 1)

	amount, err := ClaimReferralEarning(l1.ID, earnings[0].ID)
	require.NoError(t, err)
	assert.Equal(t, 10.0, amount)
	// 10 claimed commission on top of the 1 USDT salary from the fan-out.
	assert.Equal(t, 11.0, accountBalance(t, l1.ID))

	_, err = ClaimReferralEarning(l1.ID, earnings[0].ID)
	assert.ErrorIs(t, err, ErrAlreadyClaimed)

	unclaimed, err := ListReferralEarnings(l1.ID, true)
	require.NoError(t, err)
	assert.Empty(t, unclaimed)
}

func TestClaimForeignEarning(t *testing.T) {
	setupTestDB(t)
	depositor, l1, l2, _ := referralChain(t)

	_, err := CreateDepositIntent(depositor.ID, 100, "dep-8")
	require.NoError(t, err)
	require.NoError(t, ConfirmDeposit("dep-8"))

	earnings, err := ListReferralEarnings(l1.ID, true)
	require.NoError(t, err)
	require.Len(t, earnings, 1)

	_, err = ClaimReferralEarning(l2.ID, earnings[0].ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
