package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration, loaded from environment
// variables (optionally seeded from a .env file).
type Config struct {
	// Telegram
	TelegramToken string

	// HTTP API
	HTTPAddr string

	// Database
	DBDriver string // "sqlite" or "mysql"
	DBPath   string // sqlite file path
	DBDSN    string // mysql DSN, used when DBDriver == "mysql"

	// Nutritionix
	NutritionixAppID  string
	NutritionixAPIKey string

	// Optional AI recipe generation
	GeminiAPIKey string
	GeminiModel  string

	// Scheduler
	SchedulerIntervalSecs int
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first if present.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments use environment variables
	_ = godotenv.Load()

	cfg := &Config{
		TelegramToken:         os.Getenv("TELEGRAM_TOKEN"),
		HTTPAddr:              getEnv("HTTP_ADDR", "0.0.0.0:8080"),
		DBDriver:              getEnv("DB_DRIVER", "sqlite"),
		DBPath:                getEnv("DB_PATH", "diet_bot.db"),
		DBDSN:                 os.Getenv("DB_DSN"),
		NutritionixAppID:      os.Getenv("NUTRITIONIX_APP_ID"),
		NutritionixAPIKey:     os.Getenv("NUTRITIONIX_API_KEY"),
		GeminiAPIKey:          os.Getenv("GEMINI_API_KEY"),
		GeminiModel:           getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		SchedulerIntervalSecs: getEnvInt("SCHEDULER_INTERVAL_SECS", 60),
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is required")
	}
	if err := cfg.validateDatabase(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads only the database settings. Maintenance tools use
// it so they do not require bot credentials.
func LoadDatabase() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DBDriver: getEnv("DB_DRIVER", "sqlite"),
		DBPath:   getEnv("DB_PATH", "diet_bot.db"),
		DBDSN:    os.Getenv("DB_DSN"),
	}
	if err := cfg.validateDatabase(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validateDatabase() error {
	if c.DBDriver != "sqlite" && c.DBDriver != "mysql" {
		return fmt.Errorf("unsupported DB_DRIVER %q (want sqlite or mysql)", c.DBDriver)
	}
	if c.DBDriver == "mysql" && c.DBDSN == "" {
		return fmt.Errorf("DB_DSN is required when DB_DRIVER=mysql")
	}
	return nil
}

// NutritionixEnabled reports whether food API credentials are configured
func (c *Config) NutritionixEnabled() bool {
	return c.NutritionixAppID != "" && c.NutritionixAPIKey != ""
}

// AIEnabled reports whether AI recipe generation is configured
func (c *Config) AIEnabled() bool {
	return c.GeminiAPIKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
