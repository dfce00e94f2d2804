package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate adds a row lock on dialects that support it. SQLite (used by
// the test suite) serializes writers on its own and rejects FOR UPDATE.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

func lockAccount(tx *gorm.DB, accountID uint) (*models.Account, error) {
	var account models.Account
	if err := lockForUpdate(tx).First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
		}
		return nil, err
	}
	return &account, nil
}

// creditLocked increases the balance inside the caller's transaction and
// writes a completed Transaction row with the before/after balances.
func creditLocked(tx *gorm.DB, accountID uint, amount float64, trxType, note string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: credit amount must be positive", ErrInvalidConfiguration)
	}

	account, err := lockAccount(tx, accountID)
	if err != nil {
		return nil, err
	}

	before := account.USDTBalance
	account.USDTBalance = before + amount
	if err := tx.Save(account).Error; err != nil {
		return nil, err
	}

	trx := models.Transaction{
		AccountID:     account.ID,
		TrxType:       trxType,
		Amount:        decimal.NewFromFloat(amount).Round(2),
		Status:        models.TrxCompleted,
		TransactionID: uuid.New().String(),
		BalanceBefore: before,
		BalanceAfter:  account.USDTBalance,
		Note:          note,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// debitLocked decreases the balance, refusing any mutation that would take it
// negative. The check happens under the row lock, at write time.
func debitLocked(tx *gorm.DB, accountID uint, amount float64, trxType, status, note string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: debit amount must be positive", ErrInvalidConfiguration)
	}

	account, err := lockAccount(tx, accountID)
	if err != nil {
		return nil, err
	}

	before := account.USDTBalance
	if before < amount {
		return nil, fmt.Errorf("%w: need %.2f, have %.2f", ErrInsufficientFunds, amount, before)
	}

	account.USDTBalance = before - amount
	if err := tx.Save(account).Error; err != nil {
		return nil, err
	}

	trx := models.Transaction{
		AccountID:     account.ID,
		TrxType:       trxType,
		Amount:        decimal.NewFromFloat(amount).Round(2),
		Status:        status,
		TransactionID: uuid.New().String(),
		BalanceBefore: before,
		BalanceAfter:  account.USDTBalance,
		Note:          note,
	}
	if err := tx.Create(&trx).Error; err != nil {
		return nil, err
	}
	return &trx, nil
}

// Credit adds funds to an account as its own short transaction.
func Credit(accountID uint, amount float64, trxType, note string) (*models.Transaction, error) {
	var trx *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = creditLocked(tx, accountID, amount, trxType, note)
		return err
	})
	return trx, err
}

// Debit removes funds, failing with ErrInsufficientFunds rather than letting
// the balance go negative.
func Debit(accountID uint, amount float64, trxType, note string) (*models.Transaction, error) {
	var trx *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = debitLocked(tx, accountID, amount, trxType, models.TrxCompleted, note)
		return err
	})
	return trx, err
}

// Adjust is the signed convenience over Credit/Debit.
func Adjust(accountID uint, delta float64, trxType, note string) (*models.Transaction, error) {
	if delta >= 0 {
		return Credit(accountID, delta, trxType, note)
	}
	return Debit(accountID, -delta, trxType, note)
}

// GetBalance returns the current USDT balance.
func GetBalance(accountID uint) (float64, error) {
	var account models.Account
	if err := database.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
		}
		return 0, err
	}
	return account.USDTBalance, nil
}
