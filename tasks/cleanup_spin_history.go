package tasks

import (
	"time"

	"github.com/hidogang/chipkuold-sub000/database"
	"github.com/hidogang/chipkuold-sub000/models"

	log "github.com/sirupsen/logrus"
)

// CleanupOldSpinHistory prunes spin audit rows older than 90 days. Payouts
// are applied at spin time, so old rows carry no ledger state.
func CleanupOldSpinHistory() {
	cutoff := time.Now().AddDate(0, 0, -90)
	result := database.DB.
		Where("created_at < ?", cutoff).
		Delete(&models.SpinHistory{})

	if result.Error != nil {
		log.WithError(result.Error).Error("failed to delete old spin history")
	} else {
		log.WithField("deleted", result.RowsAffected).Info("spin history cleanup done")
	}
}
