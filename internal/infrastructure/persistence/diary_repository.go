package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// DiaryRepository handles food diary storage
type DiaryRepository struct {
	db *sql.DB
}

// NewDiaryRepository creates a new DiaryRepository
func NewDiaryRepository(db *sql.DB) *DiaryRepository {
	return &DiaryRepository{db: db}
}

// Add inserts a food entry and returns its ID
func (r *DiaryRepository) Add(ctx context.Context, e *models.FoodEntry) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO food_entries (user_id, date, meal_type, food_name, calories, protein, fat, carbs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.UserID, e.Date, e.MealType, e.FoodName, e.Calories, e.Protein, e.Fat, e.Carbs,
	)
	if err != nil {
		return 0, fmt.Errorf("add food entry: %w", err)
	}
	return res.LastInsertId()
}

// DailyEntries returns all entries for a user and date ordered by time
func (r *DiaryRepository) DailyEntries(ctx context.Context, userID int64, date string) ([]models.FoodEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, date, meal_type, food_name, calories, protein, fat, carbs, entry_time
		 FROM food_entries WHERE user_id = ? AND date = ? ORDER BY entry_time`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("daily entries: %w", err)
	}
	defer rows.Close()

	return scanFoodEntries(rows)
}

// DailyTotals aggregates calories and macros for a date
func (r *DiaryRepository) DailyTotals(ctx context.Context, userID int64, date string) (*models.DailyTotals, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(calories), 0), COALESCE(SUM(protein), 0),
		        COALESCE(SUM(fat), 0), COALESCE(SUM(carbs), 0)
		 FROM food_entries WHERE user_id = ? AND date = ?`,
		userID, date,
	)

	var t models.DailyTotals
	if err := row.Scan(&t.Calories, &t.Protein, &t.Fat, &t.Carbs); err != nil {
		return nil, fmt.Errorf("daily totals: %w", err)
	}
	return &t, nil
}

// ClearDay deletes all entries for a date
func (r *DiaryRepository) ClearDay(ctx context.Context, userID int64, date string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM food_entries WHERE user_id = ? AND date = ?`, userID, date)
	if err != nil {
		return fmt.Errorf("clear day: %w", err)
	}
	return nil
}

// RecentFoods returns distinct food names with averaged nutrients,
// most recently logged first
func (r *DiaryRepository) RecentFoods(ctx context.Context, userID int64, limit int) ([]models.RecentFood, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT MAX(id), food_name, AVG(calories), AVG(protein), AVG(fat), AVG(carbs)
		 FROM food_entries
		 WHERE user_id = ?
		 GROUP BY food_name
		 ORDER BY MAX(entry_time) DESC
		 LIMIT ?`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("recent foods: %w", err)
	}
	defer rows.Close()

	var foods []models.RecentFood
	for rows.Next() {
		var f models.RecentFood
		if err := rows.Scan(&f.ID, &f.FoodName, &f.Calories, &f.Protein, &f.Fat, &f.Carbs); err != nil {
			return nil, err
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

// CaloriesByDate returns per-day calorie totals for a date range (used by charts)
func (r *DiaryRepository) CaloriesByDate(ctx context.Context, userID int64, dates []string) (map[string]float64, error) {
	totals := make(map[string]float64, len(dates))
	for _, date := range dates {
		t, err := r.DailyTotals(ctx, userID, date)
		if err != nil {
			return nil, err
		}
		totals[date] = t.Calories
	}
	return totals, nil
}

func scanFoodEntries(rows *sql.Rows) ([]models.FoodEntry, error) {
	var entries []models.FoodEntry
	for rows.Next() {
		var e models.FoodEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.MealType, &e.FoodName,
			&e.Calories, &e.Protein, &e.Fat, &e.Carbs, &e.EntryTime); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
