package bootstrap

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/infrastructure/database"
	"github.com/dietplanner/backend/pkg/auth"
	"github.com/dietplanner/backend/pkg/utils"
)

//go:embed system_data.json
var systemDataJSON []byte

type systemData struct {
	Articles []struct {
		Topic string `json:"topic"`
		Title string `json:"title"`
		Body  string `json:"body"`
	} `json:"articles"`
	Nutritionists []struct {
		Name       string `json:"name"`
		Specialty  string `json:"specialty"`
		Experience string `json:"experience"`
		Contact    string `json:"contact"`
	} `json:"nutritionists"`
}

// InitializeSystemData seeds editorial content and the default admin
// account. Seeding is skipped for tables that already have rows.
func InitializeSystemData(db *database.Connection, log *zap.Logger) error {
	var data systemData
	if err := json.Unmarshal(systemDataJSON, &data); err != nil {
		return fmt.Errorf("failed to parse system_data.json: %w", err)
	}

	if empty, err := tableEmpty(db, "articles"); err != nil {
		return err
	} else if empty {
		for _, a := range data.Articles {
			if _, err := db.Exec(
				`INSERT INTO articles (topic, title, body) VALUES (?, ?, ?)`,
				a.Topic, a.Title, a.Body,
			); err != nil {
				return fmt.Errorf("seed articles: %w", err)
			}
		}
		log.Info("seeded articles", zap.Int("count", len(data.Articles)))
	}

	if empty, err := tableEmpty(db, "nutritionists"); err != nil {
		return err
	} else if empty {
		for _, n := range data.Nutritionists {
			if _, err := db.Exec(
				`INSERT INTO nutritionists (name, specialty, experience, contact) VALUES (?, ?, ?, ?)`,
				n.Name, n.Specialty, n.Experience, n.Contact,
			); err != nil {
				return fmt.Errorf("seed nutritionists: %w", err)
			}
		}
		log.Info("seeded nutritionists", zap.Int("count", len(data.Nutritionists)))
	}

	return ensureDefaultAdmin(db, log)
}

// ensureDefaultAdmin creates the initial admin account when none exist.
// Credentials come from ADMIN_USERNAME / ADMIN_PASSWORD.
func ensureDefaultAdmin(db *database.Connection, log *zap.Logger) error {
	empty, err := tableEmpty(db, "admins")
	if err != nil {
		return err
	}
	if !empty {
		return nil
	}

	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		log.Warn("no admin account configured, admin API will reject all logins")
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	if _, err := db.Exec(
		`INSERT INTO admins (id, username, password_hash) VALUES (?, ?, ?)`,
		utils.GenerateID(), username, hash,
	); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("created default admin account", zap.String("username", username))
	return nil
}

func tableEmpty(db *database.Connection, table string) (bool, error) {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&count); err != nil {
		return false, fmt.Errorf("count %s: %w", table, err)
	}
	return count == 0, nil
}
