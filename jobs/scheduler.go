package jobs

import (
	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/services"
	"github.com/hidogang/chipkuold-sub000/tasks"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
)

// StartScheduler wires the background jobs. The engines already re-derive
// salary lazily on every earnings write; the sweep only exists so dormant
// uplines get paid without waiting for their next qualifying event.
func StartScheduler(cfg *config.Config) *cron.Cron {
	c := cron.New()

	if cfg.EnableSalarySweep {
		c.AddFunc("30 0 * * *", func() {
			log.Info("[CRON] salary sweep")
			services.SweepSalaries()
		})
	}

	c.AddFunc("0 4 * * 1", func() {
		log.Info("[CRON] spin history cleanup")
		tasks.CleanupOldSpinHistory()
	})

	c.Start()
	log.Info("Scheduler started")
	return c
}
