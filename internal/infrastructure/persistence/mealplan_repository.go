package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// MealPlanRepository handles meal plan storage
type MealPlanRepository struct {
	db *sql.DB
}

// NewMealPlanRepository creates a new MealPlanRepository
func NewMealPlanRepository(db *sql.DB) *MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Add plans a recipe for a date and meal type, returning the entry ID
func (r *MealPlanRepository) Add(ctx context.Context, userID, recipeID int64, mealType, date string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO meal_plan (user_id, recipe_id, meal_type, date) VALUES (?, ?, ?, ?)`,
		userID, recipeID, mealType, date,
	)
	if err != nil {
		return 0, fmt.Errorf("add to meal plan: %w", err)
	}
	return res.LastInsertId()
}

// Day returns the plan for a date joined with recipe data, in meal order
func (r *MealPlanRepository) Day(ctx context.Context, userID int64, date string) ([]models.MealPlanEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT mp.id, mp.user_id, mp.date, mp.meal_type, mp.recipe_id,
		        r.name, r.calories, r.protein, r.fat, r.carbs
		 FROM meal_plan mp
		 JOIN recipes r ON mp.recipe_id = r.id
		 WHERE mp.user_id = ? AND mp.date = ?
		 ORDER BY CASE mp.meal_type
		     WHEN 'Завтрак' THEN 1
		     WHEN 'Обед' THEN 2
		     WHEN 'Ужин' THEN 3
		     WHEN 'Перекус' THEN 4
		     ELSE 5
		 END`,
		userID, date,
	)
	if err != nil {
		return nil, fmt.Errorf("daily meal plan: %w", err)
	}
	defer rows.Close()

	return scanMealPlanEntries(rows)
}

// ForMeal returns plan entries for one meal type on a date
func (r *MealPlanRepository) ForMeal(ctx context.Context, userID int64, mealType, date string) ([]models.MealPlanEntry, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT mp.id, mp.user_id, mp.date, mp.meal_type, mp.recipe_id,
		        r.name, r.calories, r.protein, r.fat, r.carbs
		 FROM meal_plan mp
		 JOIN recipes r ON mp.recipe_id = r.id
		 WHERE mp.user_id = ? AND mp.date = ? AND mp.meal_type = ?`,
		userID, date, mealType,
	)
	if err != nil {
		return nil, fmt.Errorf("meal plan for type: %w", err)
	}
	defer rows.Close()

	return scanMealPlanEntries(rows)
}

// Remove deletes one plan entry
func (r *MealPlanRepository) Remove(ctx context.Context, userID, planID int64) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plan WHERE id = ? AND user_id = ?`, planID, userID)
	if err != nil {
		return fmt.Errorf("remove from meal plan: %w", err)
	}
	return nil
}

// ClearDay deletes the whole plan for a date
func (r *MealPlanRepository) ClearDay(ctx context.Context, userID int64, date string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plan WHERE user_id = ? AND date = ?`, userID, date)
	if err != nil {
		return fmt.Errorf("clear meal plan: %w", err)
	}
	return nil
}

func scanMealPlanEntries(rows *sql.Rows) ([]models.MealPlanEntry, error) {
	var entries []models.MealPlanEntry
	for rows.Next() {
		var e models.MealPlanEntry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Date, &e.MealType, &e.RecipeID,
			&e.Name, &e.Calories, &e.Protein, &e.Fat, &e.Carbs); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
