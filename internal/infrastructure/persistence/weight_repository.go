package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// WeightRepository handles weight record storage
type WeightRepository struct {
	db *sql.DB
}

// NewWeightRepository creates a new WeightRepository
func NewWeightRepository(db *sql.DB) *WeightRepository {
	return &WeightRepository{db: db}
}

// Upsert records a weight for a date; a same-day record is updated in
// place so there is at most one record per day.
func (r *WeightRepository) Upsert(ctx context.Context, userID int64, date string, weight float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE weight_records SET weight = ? WHERE user_id = ? AND date = ?`,
		weight, userID, date,
	)
	if err != nil {
		return fmt.Errorf("update weight record: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected > 0 {
		return nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO weight_records (user_id, date, weight) VALUES (?, ?, ?)`,
		userID, date, weight,
	)
	if err != nil {
		return fmt.Errorf("insert weight record: %w", err)
	}
	return nil
}

// History returns records between two dates, newest first
func (r *WeightRepository) History(ctx context.Context, userID int64, fromDate, toDate string) ([]models.WeightRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, date, weight FROM weight_records
		 WHERE user_id = ? AND date >= ? AND date <= ?
		 ORDER BY date DESC`,
		userID, fromDate, toDate,
	)
	if err != nil {
		return nil, fmt.Errorf("weight history: %w", err)
	}
	defer rows.Close()

	var records []models.WeightRecord
	for rows.Next() {
		var rec models.WeightRecord
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Weight); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Latest returns the most recent record; nil when none exist
func (r *WeightRepository) Latest(ctx context.Context, userID int64) (*models.WeightRecord, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, date, weight FROM weight_records
		 WHERE user_id = ? ORDER BY date DESC LIMIT 1`,
		userID,
	)

	var rec models.WeightRecord
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Date, &rec.Weight)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("latest weight: %w", err)
	}
	return &rec, nil
}
