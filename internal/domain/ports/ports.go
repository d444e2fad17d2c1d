// Package ports defines the interfaces infrastructure must satisfy.
// Services depend on these, never on concrete clients.
package ports

import (
	"context"

	"github.com/dietplanner/backend/internal/domain/models"
)

// FoodDataProvider searches and resolves food nutrition data
type FoodDataProvider interface {
	// Search returns common and branded matches for a free-text query
	Search(ctx context.Context, query string) ([]models.Food, error)
	// NaturalNutrients resolves a natural-language description
	// ("2 eggs and toast") into foods with nutrients
	NaturalNutrients(ctx context.Context, query string) ([]models.Food, error)
	// BrandedItem fetches full nutrients for a branded item ID
	BrandedItem(ctx context.Context, itemID string) (*models.Food, error)
}

// Translator converts user text between Russian and English
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}

// RecipeGenerator produces a recipe for a goal and calorie budget
type RecipeGenerator interface {
	Generate(ctx context.Context, goal string, calories float64) (*models.Recipe, error)
}

// ChartRenderer renders statistic charts to PNG
type ChartRenderer interface {
	WeightChart(records []models.WeightRecord) ([]byte, error)
	WaterChart(days []models.WaterDay, goal int) ([]byte, error)
	NutritionChart(totals models.DailyTotals, goalCalories, goalProtein, goalFat, goalCarbs float64) ([]byte, error)
}

// Notifier delivers reminder messages to users
type Notifier interface {
	Notify(ctx context.Context, userID int64, text string) error
}
