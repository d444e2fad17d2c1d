// Package nutrition implements the calorie and body-composition math used
// across the profile, diary and statistics features.
package nutrition

import (
	"math"
	"strings"

	"github.com/dietplanner/backend/pkg/constants"
)

// Macros holds a macronutrient split in grams and calories
type Macros struct {
	Protein    int     `json:"protein"`
	ProteinCal int     `json:"protein_cal"`
	Fat        int     `json:"fat"`
	FatCal     float64 `json:"fat_cal"`
	Carbs      int     `json:"carbs"`
	CarbsCal   float64 `json:"carbs_cal"`
}

// CalculateBMI returns the body mass index for weight (kg) and height (cm)
func CalculateBMI(weight, height float64) float64 {
	heightM := height / 100
	return weight / (heightM * heightM)
}

// BMICategory returns the user-facing BMI category label
func BMICategory(bmi float64) string {
	switch {
	case bmi < 16:
		return "🚨 Выраженный дефицит массы тела"
	case bmi < 18.5:
		return "⚠️ Недостаточная масса тела"
	case bmi < 25:
		return "✅ Нормальная масса тела"
	case bmi < 30:
		return "⚠️ Избыточная масса тела (предожирение)"
	case bmi < 35:
		return "🚨 Ожирение I степени"
	case bmi < 40:
		return "🚨 Ожирение II степени"
	default:
		return "🚨 Ожирение III степени"
	}
}

// CalculateBMR returns the basal metabolic rate (Mifflin-St Jeor)
func CalculateBMR(weight, height float64, age int, gender string) float64 {
	bmr := 10*weight + 6.25*height - 5*float64(age)
	if strings.EqualFold(gender, constants.GenderMale) {
		return bmr + 5
	}
	return bmr - 161
}

// CalculateTDEE returns total daily energy expenditure for an activity level.
// Unknown levels fall back to the sedentary multiplier.
func CalculateTDEE(weight, height float64, age int, gender, activityLevel string) float64 {
	multiplier, ok := constants.ActivityMultipliers[activityLevel]
	if !ok {
		multiplier = constants.ActivityMultipliers[constants.ActivitySedentary]
	}
	return CalculateBMR(weight, height, age, gender) * multiplier
}

// GoalCalories adjusts TDEE for the user's goal.
// Unknown goals leave TDEE unchanged.
func GoalCalories(tdee float64, goal string) float64 {
	factor, ok := constants.GoalCalorieFactors[goal]
	if !ok {
		factor = 1.0
	}
	return tdee * factor
}

// proteinPerKg returns grams of protein per kg of body weight for a goal
func proteinPerKg(goal string) float64 {
	switch goal {
	case constants.GoalLose:
		return 2.2
	case constants.GoalGain:
		return 1.8
	default:
		return 2.0
	}
}

// CalculateMacros splits goal calories into protein, fat and carbs.
// Protein scales with body weight by goal, fat takes 25% of calories,
// carbs get the remainder.
func CalculateMacros(calories, weight float64, goal string) Macros {
	protein := int(math.Round(weight * proteinPerKg(goal)))
	proteinCal := protein * 4

	fatCal := calories * 0.25
	fat := int(math.Round(fatCal / 9))

	carbsCal := calories - float64(proteinCal) - fatCal
	carbs := int(math.Round(carbsCal / 4))

	return Macros{
		Protein:    protein,
		ProteinCal: proteinCal,
		Fat:        fat,
		FatCal:     fatCal,
		Carbs:      carbs,
		CarbsCal:   carbsCal,
	}
}

// ProgressPercent returns completion toward a goal, capped at 100
func ProgressPercent(current, goal float64) int {
	if goal <= 0 {
		return 0
	}
	pct := int(current / goal * 100)
	if pct > 100 {
		return 100
	}
	return pct
}

// ProgressBar renders a 10-segment text progress bar
func ProgressBar(current, goal float64) string {
	filled := ProgressPercent(current, goal) / 10
	var b strings.Builder
	for i := 0; i < 10; i++ {
		if i < filled {
			b.WriteString("▰")
		} else {
			b.WriteString("▱")
		}
	}
	return b.String()
}
