package database

import (
	"fmt"
	"log"

	"github.com/hidogang/chipkuold-sub000/config"
	"github.com/hidogang/chipkuold-sub000/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("❌ Failed to connect to database:", err)
	}

	DB = db
	log.Println("✅ Connected to database")

	if cfg.DBAutoMigrate {
		log.Println("🟡 Starting auto-migration...")

		if err := Migrate(DB); err != nil {
			log.Fatal("❌ Failed to auto-migrate database:", err)
		}

		log.Println("✅ Auto migration completed")
	}
}

// Migrate creates/updates the schema. Shared by Connect and the test setup.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Account{},
		&models.ResourceBundle{},
		&models.Chicken{},
		&models.Transaction{},
		&models.ReferralEarning{},
		&models.MilestoneReward{},
		&models.SalaryPayment{},
		&models.MysteryBoxReward{},
		&models.DailyReward{},
		&models.SpinHistory{},
		&models.Session{},
	)
}
