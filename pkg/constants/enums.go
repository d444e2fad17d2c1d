package constants

// Gender values stored on the user profile
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// Activity levels and their TDEE multipliers
const (
	ActivitySedentary = "sedentary"
	ActivityLight     = "light"
	ActivityModerate  = "moderate"
	ActivityHigh      = "high"
	ActivityAthlete   = "athlete"
)

// ActivityMultipliers maps activity level to its TDEE factor
var ActivityMultipliers = map[string]float64{
	ActivitySedentary: 1.2,
	ActivityLight:     1.375,
	ActivityModerate:  1.55,
	ActivityHigh:      1.725,
	ActivityAthlete:   1.9,
}

// Goal values
const (
	GoalLose     = "lose"
	GoalMaintain = "maintain"
	GoalGain     = "gain"
)

// GoalCalorieFactors maps goal to the TDEE adjustment factor
var GoalCalorieFactors = map[string]float64{
	GoalLose:     0.85,
	GoalMaintain: 1.0,
	GoalGain:     1.15,
}

// Meal types in display order
const (
	MealBreakfast = "Завтрак"
	MealLunch     = "Обед"
	MealDinner    = "Ужин"
	MealSnack     = "Перекус"
)

// MealTypes lists meal types in the order a day is displayed
var MealTypes = []string{MealBreakfast, MealLunch, MealDinner, MealSnack}

// MealOrder returns the sort position of a meal type; unknown types sort last
func MealOrder(mealType string) int {
	for i, m := range MealTypes {
		if m == mealType {
			return i
		}
	}
	return len(MealTypes)
}

// Reminder types
const (
	ReminderWater = "water"
	ReminderMeal  = "meal"
	ReminderWeigh = "weigh"
)
