package models

// FoodEntry is a single diary record
type FoodEntry struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Date      string  `json:"date"` // YYYY-MM-DD
	MealType  string  `json:"meal_type"`
	FoodName  string  `json:"food_name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein"`
	Fat       float64 `json:"fat"`
	Carbs     float64 `json:"carbs"`
	EntryTime string  `json:"entry_time"`
}

// DailyTotals aggregates a day of diary entries
type DailyTotals struct {
	Calories float64 `json:"total_calories"`
	Protein  float64 `json:"total_protein"`
	Fat      float64 `json:"total_fat"`
	Carbs    float64 `json:"total_carbs"`
}

// RecentFood is a distinct previously-logged food with averaged nutrients
type RecentFood struct {
	ID       int64   `json:"id"`
	FoodName string  `json:"food_name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// WaterEntry is a single water intake record
type WaterEntry struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Date      string `json:"date"`
	Amount    int    `json:"amount"` // ml
	EntryTime string `json:"entry_time"`
}

// WaterDay is a per-day water total used for weekly views
type WaterDay struct {
	Date   string `json:"date"`
	Amount int    `json:"amount"`
}

// WeightRecord is a daily weight measurement
type WeightRecord struct {
	ID     int64   `json:"id"`
	UserID int64   `json:"user_id"`
	Date   string  `json:"date"`
	Weight float64 `json:"weight"`
}
