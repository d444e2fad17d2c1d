package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// AdminRepository handles admin account storage
type AdminRepository struct {
	db *sql.DB
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *sql.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// GetByUsername fetches an admin by username; nil when not found
func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM admins WHERE username = ?`,
		username,
	)

	var a models.Admin
	err := row.Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return &a, nil
}

// UsageSummary aggregates counters for the admin overview endpoint
func (r *AdminRepository) UsageSummary(ctx context.Context) (*models.UsageSummary, error) {
	var s models.UsageSummary

	counters := []struct {
		query string
		dest  *int
	}{
		{`SELECT COUNT(*) FROM users`, &s.Users},
		{`SELECT COUNT(*) FROM users WHERE registration_complete = 1`, &s.CompletedUsers},
		{`SELECT COUNT(*) FROM food_entries`, &s.FoodEntries},
		{`SELECT COUNT(*) FROM water_entries`, &s.WaterEntries},
		{`SELECT COUNT(*) FROM recipes`, &s.Recipes},
		{`SELECT COUNT(*) FROM reminders WHERE is_active = 1`, &s.ActiveReminders},
	}

	for _, c := range counters {
		if err := r.db.QueryRowContext(ctx, c.query).Scan(c.dest); err != nil {
			return nil, fmt.Errorf("usage summary: %w", err)
		}
	}
	return &s, nil
}
