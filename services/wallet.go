package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/gorm"
)

// RequestWithdrawal holds the funds immediately: the balance is debited up
// front and the withdrawal transaction stays pending until an admin settles
// it. Rejection refunds the hold.
func RequestWithdrawal(accountID uint, amount float64) (*models.Transaction, error) {
	min := config.Get().MinWithdrawal
	if amount < min {
		return nil, fmt.Errorf("%w: minimum withdrawal is %.2f", ErrInvalidConfiguration, min)
	}

	var trx *models.Transaction
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var err error
		trx, err = debitLocked(tx, accountID, amount, models.TrxWithdrawal, models.TrxPending,
			"Withdrawal request")
		return err
	})
	if err != nil {
		return nil, err
	}
	return trx, nil
}

// ApproveWithdrawal completes a pending withdrawal. The funds already left
// the balance at request time, so only the status moves.
func ApproveWithdrawal(externalTrxID string) error {
	return settleWithdrawal(externalTrxID, models.TrxCompleted, false)
}

// RejectWithdrawal refunds the held amount and marks the row rejected.
func RejectWithdrawal(externalTrxID string) error {
	return settleWithdrawal(externalTrxID, models.TrxRejected, true)
}

func settleWithdrawal(externalTrxID, status string, refund bool) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		if err := tx.Where("transaction_id = ? AND trx_type = ?", externalTrxID, models.TrxWithdrawal).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: withdrawal %s", ErrNotFound, externalTrxID)
			}
			return err
		}

		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", trx.ID, models.TrxPending).
			Update("status", status)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: withdrawal %s is not pending", ErrConflict, externalTrxID)
		}

		if refund {
			_, err := creditLocked(tx, trx.AccountID, trx.Amount.InexactFloat64(),
				models.TrxBonus, "Withdrawal refund "+externalTrxID)
			return err
		}
		return nil
	})
}

// ListTransactions returns the account's transaction log, newest first.
func ListTransactions(accountID uint, limit int) ([]models.Transaction, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var trxs []models.Transaction
	err := database.DB.Where("account_id = ?", accountID).
		Order("id DESC").Limit(limit).Find(&trxs).Error
	return trxs, err
}
