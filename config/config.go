package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Host string `envconfig:"HOST" default:"127.0.0.1"`
	Port string `envconfig:"PORT" default:"3000"`

	DBHost        string `envconfig:"DB_HOST" default:"localhost"`
	DBPort        string `envconfig:"DB_PORT" default:"5432"`
	DBUser        string `envconfig:"DB_USER" default:"postgres"`
	DBPassword    string `envconfig:"DB_PASSWORD" required:"true"`
	DBName        string `envconfig:"DB_NAME" default:"farm_db"`
	DBSSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	DBAutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`

	AdminAPIKey     string `envconfig:"ADMIN_API_KEY" required:"true"`
	SessionTTLHours int    `envconfig:"SESSION_TTL_HOURS" default:"72"`

	MinWithdrawal float64 `envconfig:"MIN_WITHDRAWAL" default:"10"`
	SuperSpinCost float64 `envconfig:"SUPER_SPIN_COST" default:"1"`

	EnableSalarySweep bool `envconfig:"ENABLE_SALARY_SWEEP" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

var cfg *Config

// Load parses the environment into the process-wide config. Called once from
// main before anything touches Get.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg = &c
	return cfg, nil
}

// Get returns the loaded config. Tests that bypass main can seed it directly.
func Get() *Config {
	if cfg == nil {
		cfg = &Config{
			SessionTTLHours: 72,
			MinWithdrawal:   10,
			SuperSpinCost:   1,
		}
	}
	return cfg
}

// Set replaces the process config; used by tests.
func Set(c *Config) {
	cfg = c
}
