package services

import (
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	salaryPerActiveReferral = 1.0
	salaryMinInterval       = 28 * 24 * time.Hour
)

// countActiveReferrals counts direct referrals with at least one completed
// recharge. "Active" is re-derived on every check rather than cached.
func countActiveReferrals(tx *gorm.DB, referralCode string) (int64, error) {
	var count int64
	err := tx.Model(&models.Account{}).
		Where("referred_by = ?", referralCode).
		Where("EXISTS (SELECT 1 FROM transactions t WHERE t.account_id = accounts.id AND t.trx_type = ? AND t.status = ?)",
			models.TrxRecharge, models.TrxCompleted).
		Count(&count).Error
	return count, err
}

// checkSalary pays the monthly salary if the account is due: at most one
// payment per calendar period, and never twice within 28 days. Invoked on
// every team-earnings credit and by the optional cron sweep.
func checkSalary(tx *gorm.DB, account *models.Account) error {
	active, err := countActiveReferrals(tx, account.ReferralCode)
	if err != nil {
		return err
	}
	if active == 0 {
		return nil
	}

	now := timeNow()
	period := now.Format("2006-01")

	var existing int64
	if err := tx.Model(&models.SalaryPayment{}).
		Where("account_id = ? AND period = ?", account.ID, period).
		Count(&existing).Error; err != nil {
		return err
	}
	if existing > 0 {
		return nil
	}

	if account.LastSalaryPaidAt != nil && now.Sub(*account.LastSalaryPaidAt) < salaryMinInterval {
		return nil
	}

	amount := float64(active) * salaryPerActiveReferral
	payment := models.SalaryPayment{
		AccountID: account.ID,
		Amount:    amount,
		Period:    period,
		PaidAt:    now,
	}
	if err := tx.Create(&payment).Error; err != nil {
		return err
	}

	if _, err := creditLocked(tx, account.ID, amount, models.TrxBonus,
		"Monthly salary "+period); err != nil {
		return err
	}

	return tx.Model(&models.Account{}).Where("id = ?", account.ID).
		Update("last_salary_paid_at", now).Error
}

// CheckSalary runs the salary check for one account in its own transaction.
func CheckSalary(accountID uint) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, accountID)
		if err != nil {
			return err
		}
		return checkSalary(tx, account)
	})
}

// SweepSalaries runs the salary check for every account that has direct
// referrals. A dormant upline would otherwise only be paid on its next
// qualifying write; the sweep closes that gap.
func SweepSalaries() {
	var ids []uint
	err := database.DB.Model(&models.Account{}).
		Where("EXISTS (SELECT 1 FROM accounts r WHERE r.referred_by = accounts.referral_code)").
		Pluck("id", &ids).Error
	if err != nil {
		log.WithError(err).Error("salary sweep query failed")
		return
	}

	paid := 0
	for _, id := range ids {
		if err := CheckSalary(id); err != nil {
			log.WithError(err).WithField("account", id).Error("salary check failed")
			continue
		}
		paid++
	}
	log.WithFields(log.Fields{"candidates": len(ids), "checked": paid}).Info("salary sweep done")
}

// ListSalaryPayments returns the account's salary history.
func ListSalaryPayments(accountID uint) ([]models.SalaryPayment, error) {
	var payments []models.SalaryPayment
	err := database.DB.Where("account_id = ?", accountID).Order("period DESC").Find(&payments).Error
	return payments, err
}
