package constants

// Table names
const (
	TableUsers         = "users"
	TableFoodEntries   = "food_entries"
	TableWaterEntries  = "water_entries"
	TableWeightRecords = "weight_records"
	TableRecipes       = "recipes"
	TableMealPlan      = "meal_plan"
	TableCartItems     = "cart_items"
	TableArticles      = "articles"
	TableNutritionists = "nutritionists"
	TableReminders     = "reminders"
	TableAdmins        = "admins"
)

// HTTP header and context keys
const (
	HeaderAuthorization = "Authorization"
	ContextKeyAdmin     = "admin"
	ContextKeyToken     = "token"
)
