package telegram

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/internal/domain/models"
)

func TestFormatDiaryDay(t *testing.T) {
	view := &services.DayView{
		Date: "2026-08-28",
		Meals: map[string][]models.FoodEntry{
			"Обед":    {{FoodName: "Гречка", Calories: 330}},
			"Завтрак": {{FoodName: "Овсянка", Calories: 150}, {FoodName: "Банан", Calories: 90}},
		},
		Totals: models.DailyTotals{Calories: 570, Protein: 20, Fat: 8, Carbs: 100},
		Targets: &models.User{
			GoalCalories: 2000, Protein: 120, Fat: 60, Carbs: 250,
		},
	}

	text := formatDiaryDay(view)

	assert.Contains(t, text, "Дневник питания за 28.08.2026")
	assert.Contains(t, text, "Овсянка – 150 ккал")
	assert.Contains(t, text, "Калории: 570 / 2000 ккал (28%)")

	// breakfast comes before lunch regardless of map order
	assert.Less(t, strings.Index(text, "Завтрак"), strings.Index(text, "Обед"))
}

func TestFormatDiaryDayEmpty(t *testing.T) {
	view := &services.DayView{Date: "2026-08-28", Meals: map[string][]models.FoodEntry{}}
	assert.Contains(t, formatDiaryDay(view), "нет записей")
}

func TestFormatWaterWeekRecommendations(t *testing.T) {
	low := &services.WeekStats{Goal: 2000, Total: 7000, Average: 1000, HasData: true}
	assert.Contains(t, formatWaterWeek(low), "значительно меньше воды")

	near := &services.WeekStats{Goal: 2000, Total: 13300, Average: 1900, HasData: true}
	assert.Contains(t, formatWaterWeek(near), "немного не дотягиваете")

	good := &services.WeekStats{Goal: 2000, Total: 14700, Average: 2100, HasData: true}
	assert.Contains(t, formatWaterWeek(good), "Отлично")
}

func TestFormatNutritionReportAnalysis(t *testing.T) {
	report := &services.NutritionReport{
		Totals:          models.DailyTotals{Calories: 2500, Protein: 80, Fat: 90, Carbs: 300},
		GoalCalories:    2000,
		GoalProtein:     120,
		GoalFat:         60,
		GoalCarbs:       250,
		CaloriesPercent: 100, // capped
		ProteinPercent:  66,
		FatPercent:      100,
		CarbsPercent:    100,
		Goal:            "lose",
	}

	text := formatNutritionReport(report)
	assert.Contains(t, text, "✅ Вы соблюдаете дневную норму")
	assert.Contains(t, text, "увеличить потребление белка")
}

func TestFormatProfile(t *testing.T) {
	summary := &services.ProfileSummary{
		User: &models.User{
			Name: "Иван", Gender: "male", Age: 30, Height: 175, Weight: 70,
			ActivityLevel: "moderate", Goal: "lose",
			GoalCalories: 2172, Protein: 154, Fat: 60, Carbs: 253,
			WaterGoal: 2000, RegistrationDate: "2026-08-01 10:00:00",
		},
		BMI:         22.9,
		BMICategory: "Нормальный вес",
	}

	text := formatProfile(summary)
	assert.Contains(t, text, "ИМТ: 22.9 (Нормальный вес)")
	assert.Contains(t, text, "Цель: 🔻 Похудение")
	assert.Contains(t, text, "Средняя активность (3-5 тренировок)")
	assert.Contains(t, text, "Дата регистрации: 01.08.2026")
}

func TestFormatCart(t *testing.T) {
	items := []models.CartItem{
		{Product: "Куриная грудка", Quantity: 300, Unit: "г"},
		{Product: "Молоко", Quantity: 1000, Unit: "мл", Purchased: true},
	}

	text := formatCart(items)
	assert.Contains(t, text, "• Куриная грудка — 300 г")
	assert.Contains(t, text, "<s>Молоко — 1000 мл</s>")
	assert.Contains(t, text, "Осталось купить: 1")

	assert.Contains(t, formatCart(nil), "Корзина пуста")
}

func TestGoalAndActivityLabels(t *testing.T) {
	assert.Equal(t, "🔺 Набор веса", GoalLabel("gain"))
	assert.Equal(t, "unknown", GoalLabel("unknown"))
	assert.Equal(t, "Атлет (ежедневные интенсивные тренировки)", ActivityLabel("athlete"))
}
