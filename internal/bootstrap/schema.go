package bootstrap

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/infrastructure/database"
)

// autoPK returns the dialect's auto-incrementing primary key clause
func autoPK(driver string) string {
	if driver == "mysql" {
		return "BIGINT PRIMARY KEY AUTO_INCREMENT"
	}
	return "INTEGER PRIMARY KEY AUTOINCREMENT"
}

func tableDefinitions(driver string) []string {
	pk := autoPK(driver)

	return []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGINT PRIMARY KEY,
			name TEXT,
			age INTEGER,
			gender TEXT,
			height REAL,
			weight REAL,
			activity_level TEXT,
			goal TEXT,
			goal_calories REAL,
			protein INTEGER,
			fat INTEGER,
			carbs INTEGER,
			registration_date TEXT DEFAULT CURRENT_TIMESTAMP,
			water_goal INTEGER DEFAULT 2000,
			registration_complete INTEGER DEFAULT 0
		)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS food_entries (
			id %s,
			user_id BIGINT,
			date TEXT,
			meal_type TEXT,
			food_name TEXT,
			calories REAL,
			protein REAL,
			fat REAL,
			carbs REAL,
			entry_time TEXT DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS water_entries (
			id %s,
			user_id BIGINT,
			date TEXT,
			amount INTEGER,
			entry_time TEXT DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS weight_records (
			id %s,
			user_id BIGINT,
			date TEXT,
			weight REAL
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS recipes (
			id %s,
			user_id BIGINT,
			name TEXT,
			ingredients TEXT,
			instructions TEXT,
			calories REAL,
			protein REAL,
			fat REAL,
			carbs REAL,
			is_favorite INTEGER DEFAULT 0,
			creation_date TEXT DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS meal_plan (
			id %s,
			user_id BIGINT,
			date TEXT,
			meal_type TEXT,
			recipe_id BIGINT
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS cart_items (
			id %s,
			user_id BIGINT,
			product TEXT,
			quantity REAL,
			unit TEXT,
			purchased INTEGER DEFAULT 0,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS articles (
			id %s,
			topic TEXT,
			title TEXT,
			body TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS nutritionists (
			id %s,
			name TEXT,
			specialty TEXT,
			experience TEXT,
			contact TEXT
		)`, pk),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS reminders (
			id %s,
			user_id BIGINT,
			type TEXT,
			schedule TEXT,
			is_active INTEGER DEFAULT 1,
			last_run_at TEXT,
			next_run_at TEXT
		)`, pk),
		`CREATE TABLE IF NOT EXISTS admins (
			id VARCHAR(36) PRIMARY KEY,
			username TEXT,
			password_hash TEXT,
			created_at TEXT DEFAULT CURRENT_TIMESTAMP
		)`,
	}
}

func indexDefinitions(driver string) []string {
	// MySQL has no IF NOT EXISTS for indexes; duplicate-index errors are
	// tolerated by the caller instead
	ifNotExists := "IF NOT EXISTS "
	if driver == "mysql" {
		ifNotExists = ""
	}

	indexes := []struct{ name, target string }{
		{"idx_food_entries_user_date", "food_entries (user_id, date)"},
		{"idx_water_entries_user_date", "water_entries (user_id, date)"},
		{"idx_weight_records_user_date", "weight_records (user_id, date)"},
		{"idx_recipes_user", "recipes (user_id)"},
		{"idx_meal_plan_user_date", "meal_plan (user_id, date)"},
		{"idx_cart_items_user", "cart_items (user_id)"},
		{"idx_reminders_user", "reminders (user_id)"},
	}

	ddl := make([]string, 0, len(indexes))
	for _, idx := range indexes {
		ddl = append(ddl, fmt.Sprintf("CREATE INDEX %sON %s", ifNotExists+idx.name+" ", idx.target))
	}
	return ddl
}

// InitializeSchema creates all tables and indexes. DDL is idempotent so
// this is safe to run on every startup.
func InitializeSchema(db *database.Connection, log *zap.Logger) error {
	log.Info("initializing schema", zap.String("driver", db.Driver()))

	for _, ddl := range tableDefinitions(db.Driver()) {
		if _, err := db.Exec(ddl); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	for _, ddl := range indexDefinitions(db.Driver()) {
		if _, err := db.Exec(ddl); err != nil {
			if db.Driver() == "mysql" {
				// Duplicate index on restart
				log.Debug("index creation skipped", zap.Error(err))
				continue
			}
			return fmt.Errorf("create index: %w", err)
		}
	}

	log.Info("schema ready")
	return nil
}
