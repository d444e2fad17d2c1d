package models

// User is a Telegram user profile. ID is the Telegram chat/user ID.
type User struct {
	ID                   int64   `json:"id"`
	Name                 string  `json:"name"`
	Age                  int     `json:"age"`
	Gender               string  `json:"gender"`
	Height               float64 `json:"height"` // cm
	Weight               float64 `json:"weight"` // kg
	ActivityLevel        string  `json:"activity_level"`
	Goal                 string  `json:"goal"`
	GoalCalories         float64 `json:"goal_calories"`
	Protein              int     `json:"protein"` // grams per day
	Fat                  int     `json:"fat"`
	Carbs                int     `json:"carbs"`
	RegistrationDate     string  `json:"registration_date"`
	WaterGoal            int     `json:"water_goal"` // ml per day
	RegistrationComplete bool    `json:"registration_complete"`
}

// Admin is an operator account for the REST admin API
type Admin struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	CreatedAt    string `json:"created_at"`
}
