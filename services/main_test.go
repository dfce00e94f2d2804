package services

import (
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB points the global handle at a fresh in-memory database. Each
// test gets its own named shared-cache DB so parallel packages don't collide.
func setupTestDB(t *testing.T) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	config.Set(&config.Config{
		SessionTTLHours: 72,
		MinWithdrawal:   10,
		SuperSpinCost:   1,
	})

	t.Cleanup(func() {
		sqlDB.Close()
		database.DB = nil
	})
}

// setNow pins the engine clock for the duration of the test.
func setNow(t *testing.T, at time.Time) {
	t.Helper()
	prev := timeNow
	timeNow = func() time.Time { return at.UTC() }
	t.Cleanup(func() { timeNow = prev })
}

// seedRand makes the weighted draws deterministic.
func seedRand(t *testing.T, seed int64) {
	t.Helper()
	prev := drawRand
	drawRand = rand.New(rand.NewSource(seed))
	t.Cleanup(func() { drawRand = prev })
}

func mustAccount(t *testing.T, username, code string, referredBy *string) *models.Account {
	t.Helper()
	account := models.Account{
		Username:     username,
		PasswordHash: "x",
		ReferralCode: code,
		ReferredBy:   referredBy,
		IsActive:     true,
	}
	require.NoError(t, database.DB.Create(&account).Error)
	return &account
}

func mustFund(t *testing.T, accountID uint, amount float64) {
	t.Helper()
	require.NoError(t, database.DB.Model(&models.Account{}).
		Where("id = ?", accountID).
		Update("usdt_balance", gorm.Expr("usdt_balance + ?", amount)).Error)
}

func accountBalance(t *testing.T, accountID uint) float64 {
	t.Helper()
	var account models.Account
	require.NoError(t, database.DB.First(&account, accountID).Error)
	return account.USDTBalance
}
