package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "diet_bot.db", cfg.DBPath)
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr)
	assert.Equal(t, 60, cfg.SchedulerIntervalSecs)
	assert.False(t, cfg.NutritionixEnabled())
	assert.False(t, cfg.AIEnabled())
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_MySQLRequiresDSN(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("DB_DSN", "")

	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DSN", "user:pass@tcp(localhost:3306)/diet")
	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "mysql", cfg.DBDriver)
}

func TestLoad_BadDriver(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DB_DRIVER", "postgres")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadDatabase_NoTokenRequired(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_PATH", "/tmp/maintenance.db")

	cfg, err := LoadDatabase()
	assert.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.DBDriver)
	assert.Equal(t, "/tmp/maintenance.db", cfg.DBPath)
}

func TestLoadDatabase_BadDriver(t *testing.T) {
	t.Setenv("DB_DRIVER", "postgres")

	_, err := LoadDatabase()
	assert.Error(t, err)
}

func TestNutritionixEnabled(t *testing.T) {
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("NUTRITIONIX_APP_ID", "app")
	t.Setenv("NUTRITIONIX_API_KEY", "key")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.True(t, cfg.NutritionixEnabled())
}
