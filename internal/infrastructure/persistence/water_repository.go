package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// WaterRepository handles water intake storage
type WaterRepository struct {
	db *sql.DB
}

// NewWaterRepository creates a new WaterRepository
func NewWaterRepository(db *sql.DB) *WaterRepository {
	return &WaterRepository{db: db}
}

// Add records a water intake for a date
func (r *WaterRepository) Add(ctx context.Context, userID int64, date string, amount int) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO water_entries (user_id, date, amount) VALUES (?, ?, ?)`,
		userID, date, amount,
	)
	if err != nil {
		return fmt.Errorf("add water entry: %w", err)
	}
	return nil
}

// DailyTotal returns the water total (ml) for a date
func (r *WaterRepository) DailyTotal(ctx context.Context, userID int64, date string) (int, error) {
	var amount int
	err := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(amount), 0) FROM water_entries WHERE user_id = ? AND date = ?`,
		userID, date,
	).Scan(&amount)
	if err != nil {
		return 0, fmt.Errorf("daily water: %w", err)
	}
	return amount, nil
}

// Week returns totals for the given dates, zero-filled, in input order
func (r *WaterRepository) Week(ctx context.Context, userID int64, dates []string) ([]models.WaterDay, error) {
	days := make([]models.WaterDay, 0, len(dates))
	for _, date := range dates {
		amount, err := r.DailyTotal(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		days = append(days, models.WaterDay{Date: date, Amount: amount})
	}
	return days, nil
}
