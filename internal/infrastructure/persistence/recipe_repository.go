package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
)

// RecipeRepository handles recipe storage
type RecipeRepository struct {
	db *sql.DB
}

// NewRecipeRepository creates a new RecipeRepository
func NewRecipeRepository(db *sql.DB) *RecipeRepository {
	return &RecipeRepository{db: db}
}

// Save inserts a recipe and returns its ID
func (r *RecipeRepository) Save(ctx context.Context, rec *models.Recipe) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO recipes (user_id, name, ingredients, instructions, calories, protein, fat, carbs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.UserID, rec.Name, rec.Ingredients, rec.Instructions,
		rec.Calories, rec.Protein, rec.Fat, rec.Carbs,
	)
	if err != nil {
		return 0, fmt.Errorf("save recipe: %w", err)
	}
	return res.LastInsertId()
}

// List returns a user's recipes, favorites first then newest.
// favoritesOnly restricts to favorites when true.
func (r *RecipeRepository) List(ctx context.Context, userID int64, favoritesOnly bool) ([]models.Recipe, error) {
	query := `SELECT id, user_id, name, ingredients, instructions, calories, protein, fat, carbs, is_favorite, creation_date
	          FROM recipes WHERE user_id = ?`
	args := []interface{}{userID}
	if favoritesOnly {
		query += ` AND is_favorite = 1`
	}
	query += ` ORDER BY is_favorite DESC, creation_date DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []models.Recipe
	for rows.Next() {
		var rec models.Recipe
		if err := rows.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Ingredients,
			&rec.Instructions, &rec.Calories, &rec.Protein, &rec.Fat, &rec.Carbs,
			&rec.IsFavorite, &rec.CreationDate); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

// Get fetches a recipe by ID; nil when not found
func (r *RecipeRepository) Get(ctx context.Context, recipeID int64) (*models.Recipe, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, name, ingredients, instructions, calories, protein, fat, carbs, is_favorite, creation_date
		 FROM recipes WHERE id = ?`,
		recipeID,
	)

	var rec models.Recipe
	err := row.Scan(&rec.ID, &rec.UserID, &rec.Name, &rec.Ingredients,
		&rec.Instructions, &rec.Calories, &rec.Protein, &rec.Fat, &rec.Carbs,
		&rec.IsFavorite, &rec.CreationDate)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return &rec, nil
}

// ToggleFavorite flips the favorite flag and returns the new state
func (r *RecipeRepository) ToggleFavorite(ctx context.Context, recipeID int64) (bool, error) {
	rec, err := r.Get(ctx, recipeID)
	if err != nil {
		return false, err
	}
	if rec == nil {
		return false, nil
	}

	newState := !rec.IsFavorite
	_, err = r.db.ExecContext(ctx,
		`UPDATE recipes SET is_favorite = ? WHERE id = ?`, boolToInt(newState), recipeID)
	if err != nil {
		return false, fmt.Errorf("toggle favorite: %w", err)
	}
	return newState, nil
}

// Delete removes a recipe and any meal plan entries referencing it
func (r *RecipeRepository) Delete(ctx context.Context, recipeID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM meal_plan WHERE recipe_id = ?`, recipeID); err != nil {
		return fmt.Errorf("delete meal plan refs: %w", err)
	}
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM recipes WHERE id = ?`, recipeID); err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
