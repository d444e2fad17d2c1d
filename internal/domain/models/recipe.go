package models

// Recipe is a user-owned or generated recipe
type Recipe struct {
	ID           int64   `json:"id"`
	UserID       int64   `json:"user_id"`
	Name         string  `json:"name"`
	Ingredients  string  `json:"ingredients"` // one "Name - qty unit" line per ingredient
	Instructions string  `json:"instructions"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Fat          float64 `json:"fat"`
	Carbs        float64 `json:"carbs"`
	IsFavorite   bool    `json:"is_favorite"`
	CreationDate string  `json:"creation_date"`
}

// MealPlanEntry is a planned recipe for a date and meal type.
// Recipe fields are joined in for display.
type MealPlanEntry struct {
	ID       int64   `json:"id"`
	UserID   int64   `json:"user_id"`
	Date     string  `json:"date"`
	MealType string  `json:"meal_type"`
	RecipeID int64   `json:"recipe_id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// CartItem is a shopping list line
type CartItem struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Product   string  `json:"product"`
	Quantity  float64 `json:"quantity"`
	Unit      string  `json:"unit"`
	Purchased bool    `json:"purchased"`
	CreatedAt string  `json:"created_at"`
}
