package models

// Article is an editorial piece grouped under a topic
type Article struct {
	ID        int64  `json:"id"`
	Topic     string `json:"topic"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

// Nutritionist is a consultation contact card
type Nutritionist struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Specialty  string `json:"specialty"`
	Experience string `json:"experience"`
	Contact    string `json:"contact"`
}

// Reminder is a user notification schedule
type Reminder struct {
	ID        int64   `json:"id"`
	UserID    int64   `json:"user_id"`
	Type      string  `json:"type"`     // water, meal, weigh
	Schedule  string  `json:"schedule"` // cron expression (minute hour dom month dow)
	IsActive  bool    `json:"is_active"`
	LastRunAt *string `json:"last_run_at,omitempty"` // RFC3339 UTC
	NextRunAt *string `json:"next_run_at,omitempty"`
}

// Food is a normalized food item coming from the food data provider
type Food struct {
	Name     string  `json:"name"`
	Brand    string  `json:"brand,omitempty"`
	ItemID   string  `json:"item_id,omitempty"` // branded item lookup key
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
	Serving  string  `json:"serving,omitempty"`
	GramsPer float64 `json:"grams_per,omitempty"` // serving weight in grams
}

// UsageSummary is the admin overview of bot activity
type UsageSummary struct {
	Users           int `json:"users"`
	CompletedUsers  int `json:"completed_users"`
	FoodEntries     int `json:"food_entries"`
	WaterEntries    int `json:"water_entries"`
	Recipes         int `json:"recipes"`
	ActiveReminders int `json:"active_reminders"`
}
