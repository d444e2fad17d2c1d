package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// ReminderRepository handles notification schedule storage
type ReminderRepository struct {
	db *sql.DB
}

// NewReminderRepository creates a new ReminderRepository
func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a reminder and returns its ID
func (r *ReminderRepository) Create(ctx context.Context, rem *models.Reminder) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO reminders (user_id, type, schedule, is_active, next_run_at) VALUES (?, ?, ?, ?, ?)`,
		rem.UserID, rem.Type, rem.Schedule, boolToInt(rem.IsActive), rem.NextRunAt,
	)
	if err != nil {
		return 0, fmt.Errorf("create reminder: %w", err)
	}
	return res.LastInsertId()
}

// ListForUser returns a user's reminders
func (r *ReminderRepository) ListForUser(ctx context.Context, userID int64) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, schedule, is_active, last_run_at, next_run_at
		 FROM reminders WHERE user_id = ? ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// ListActive returns every active reminder across all users
func (r *ReminderRepository) ListActive(ctx context.Context) ([]models.Reminder, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, type, schedule, is_active, last_run_at, next_run_at
		 FROM reminders WHERE is_active = 1`)
	if err != nil {
		return nil, fmt.Errorf("list active reminders: %w", err)
	}
	defer rows.Close()

	return scanReminders(rows)
}

// SetActive toggles a reminder on or off
func (r *ReminderRepository) SetActive(ctx context.Context, id int64, active bool) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET is_active = ? WHERE id = ?`, boolToInt(active), id)
	if err != nil {
		return fmt.Errorf("set reminder active: %w", err)
	}
	return nil
}

// MarkRun records the last execution and the computed next run time
func (r *ReminderRepository) MarkRun(ctx context.Context, id int64, lastRunAt, nextRunAt string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET last_run_at = ?, next_run_at = ? WHERE id = ?`,
		lastRunAt, nextRunAt, id)
	if err != nil {
		return fmt.Errorf("mark reminder run: %w", err)
	}
	return nil
}

// SetNextRun updates only the next run time
func (r *ReminderRepository) SetNextRun(ctx context.Context, id int64, nextRunAt string) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE reminders SET next_run_at = ? WHERE id = ?`, nextRunAt, id)
	if err != nil {
		return fmt.Errorf("set next run: %w", err)
	}
	return nil
}

// Delete removes a reminder
func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete reminder: %w", err)
	}
	return nil
}

func scanReminders(rows *sql.Rows) ([]models.Reminder, error) {
	var reminders []models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.Type, &rem.Schedule,
			&rem.IsActive, &rem.LastRunAt, &rem.NextRunAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, rem)
	}
	return reminders, rows.Err()
}
