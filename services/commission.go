package services

import (
	"errors"
	"fmt"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	maxUplineDepth    = 6
	firstDepositBonus = 0.10
)

// commissionRates maps upline level to the share of the deposit it earns.
var commissionRates = map[int]float64{
	1: 0.10,
	2: 0.06,
	3: 0.04,
	4: 0.03,
	5: 0.02,
	6: 0.01,
}

// ResolveUpline walks the referredBy chain up to six levels. The visited set
// is a defensive bound; referredBy is immutable after registration so a cycle
// should never exist.
func ResolveUpline(db *gorm.DB, account *models.Account) ([]models.Account, error) {
	var upline []models.Account
	visited := map[uint]bool{account.ID: true}

	current := account
	for level := 1; level <= maxUplineDepth; level++ {
		if current.ReferredBy == nil || *current.ReferredBy == "" {
			break
		}

		var referrer models.Account
		err := db.Where("referral_code = ?", *current.ReferredBy).First(&referrer).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				break
			}
			return nil, err
		}
		if visited[referrer.ID] {
			break
		}
		visited[referrer.ID] = true

		upline = append(upline, referrer)
		current = &referrer
	}
	return upline, nil
}

// CreateDepositIntent records a pending recharge transaction. The balance is
// only touched when an admin confirms the deposit.
func CreateDepositIntent(accountID uint, amount float64, externalID string) (*models.Transaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: deposit amount must be positive", ErrInvalidConfiguration)
	}
	if externalID == "" {
		externalID = uuid.New().String()
	}

	var account models.Account
	if err := database.DB.First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: account %d", ErrNotFound, accountID)
		}
		return nil, err
	}

	trx := models.Transaction{
		AccountID:     accountID,
		TrxType:       models.TrxRecharge,
		Amount:        decimal.NewFromFloat(amount).Round(2),
		Status:        models.TrxPending,
		TransactionID: externalID,
		Note:          "Deposit request",
	}
	if err := database.DB.Create(&trx).Error; err != nil {
		return nil, fmt.Errorf("%w: duplicate transaction id", ErrConflict)
	}
	return &trx, nil
}

// ConfirmDeposit flips a pending recharge to completed and runs the side
// effects: credit the depositor, first-deposit bonus, six-level commission
// fan-out. The status-transition guard makes the side effects run at most
// once no matter how many times confirmation is attempted.
func ConfirmDeposit(externalTrxID string) error {
	var trx models.Transaction
	var depositor models.Account
	firstDeposit := false

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("transaction_id = ? AND trx_type = ?", externalTrxID, models.TrxRecharge).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: recharge %s", ErrNotFound, externalTrxID)
			}
			return err
		}

		// Only the caller that wins this transition runs the fan-out.
		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", trx.ID, models.TrxPending).
			Update("status", models.TrxCompleted)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: recharge %s is not pending", ErrConflict, externalTrxID)
		}

		account, err := lockAccount(tx, trx.AccountID)
		if err != nil {
			return err
		}
		depositor = *account

		amount := trx.Amount.InexactFloat64()
		before := account.USDTBalance
		account.USDTBalance = before + amount
		if err := tx.Save(account).Error; err != nil {
			return err
		}
		if err := tx.Model(&trx).Updates(map[string]interface{}{
			"balance_before": before,
			"balance_after":  account.USDTBalance,
		}).Error; err != nil {
			return err
		}

		var prior int64
		if err := tx.Model(&models.Transaction{}).
			Where("account_id = ? AND trx_type = ? AND status = ? AND id <> ?",
				account.ID, models.TrxRecharge, models.TrxCompleted, trx.ID).
			Count(&prior).Error; err != nil {
			return err
		}
		if prior == 0 {
			firstDeposit = true
			bonus := decimal.NewFromFloat(amount).
				Mul(decimal.NewFromFloat(firstDepositBonus)).Round(2).InexactFloat64()
			if _, err := creditLocked(tx, account.ID, bonus, models.TrxBonus,
				"First deposit bonus"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"account":       depositor.ID,
		"trx":           externalTrxID,
		"amount":        trx.Amount,
		"first_deposit": firstDeposit,
	}).Info("deposit confirmed")

	fanOutCommissions(&depositor, &trx)
	return nil
}

// RejectDeposit flips a pending recharge to rejected. No side effects run.
func RejectDeposit(externalTrxID string) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		var trx models.Transaction
		if err := tx.Where("transaction_id = ? AND trx_type = ?", externalTrxID, models.TrxRecharge).
			First(&trx).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: recharge %s", ErrNotFound, externalTrxID)
			}
			return err
		}

		res := tx.Model(&models.Transaction{}).
			Where("id = ? AND status = ?", trx.ID, models.TrxPending).
			Update("status", models.TrxRejected)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: recharge %s is not pending", ErrConflict, externalTrxID)
		}
		return nil
	})
}

// fanOutCommissions walks the depositor's upline and credits each level as an
// independent short transaction, so no lock chain spans the six accounts. A
// failure at one level truncates the walk instead of failing the deposit.
func fanOutCommissions(depositor *models.Account, trx *models.Transaction) {
	upline, err := ResolveUpline(database.DB, depositor)
	if err != nil {
		log.WithError(err).WithField("account", depositor.ID).Error("upline resolution failed")
		return
	}

	amount := trx.Amount
	for i, beneficiary := range upline {
		level := i + 1
		commission := amount.Mul(decimal.NewFromFloat(commissionRates[level])).Round(2)

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			earning := models.ReferralEarning{
				BeneficiaryID: beneficiary.ID,
				SourceID:      depositor.ID,
				Level:         level,
				Amount:        commission,
				DepositTrxID:  trx.TransactionID,
			}
			if err := tx.Create(&earning).Error; err != nil {
				return err
			}

			account, err := lockAccount(tx, beneficiary.ID)
			if err != nil {
				return err
			}
			account.TotalReferralEarnings += commission.InexactFloat64()
			account.TotalTeamEarnings += commission.InexactFloat64()
			if err := tx.Save(account).Error; err != nil {
				return err
			}

			if err := checkMilestones(tx, account.ID, account.TotalReferralEarnings); err != nil {
				return err
			}
			return checkSalary(tx, account)
		})
		if err != nil {
			log.WithError(err).WithFields(log.Fields{
				"beneficiary": beneficiary.ID,
				"level":       level,
			}).Error("commission credit failed, truncating upline walk")
			return
		}
	}
}

// ClaimReferralEarning credits an unclaimed commission to the beneficiary's
// balance. The guarded flip makes double claims fail loudly.
func ClaimReferralEarning(accountID uint, earningID uint) (float64, error) {
	amount := 0.0

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var earning models.ReferralEarning
		if err := tx.Where("id = ? AND beneficiary_id = ?", earningID, accountID).
			First(&earning).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: earning %d", ErrNotFound, earningID)
			}
			return err
		}

		now := timeNow()
		res := tx.Model(&models.ReferralEarning{}).
			Where("id = ? AND claimed = ?", earning.ID, false).
			Updates(map[string]interface{}{"claimed": true, "claimed_at": now})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: earning %d", ErrAlreadyClaimed, earningID)
		}

		amount = earning.Amount.InexactFloat64()
		_, err := creditLocked(tx, accountID, amount, models.TrxCommission,
			fmt.Sprintf("Referral commission L%d", earning.Level))
		return err
	})
	if err != nil {
		return 0, err
	}
	return amount, nil
}

// ListReferralEarnings returns the account's earnings, newest first.
func ListReferralEarnings(accountID uint, unclaimedOnly bool) ([]models.ReferralEarning, error) {
	q := database.DB.Where("beneficiary_id = ?", accountID)
	if unclaimedOnly {
		q = q.Where("claimed = ?", false)
	}
	var earnings []models.ReferralEarning
	err := q.Order("id DESC").Find(&earnings).Error
	return earnings, err
}
