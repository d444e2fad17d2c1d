package nutrition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dietplanner/backend/pkg/constants"
)

func TestCalculateBMI(t *testing.T) {
	assert.InDelta(t, 22.86, CalculateBMI(70, 175), 0.01)
	assert.InDelta(t, 31.25, CalculateBMI(80, 160), 0.01)
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		name     string
		bmi      float64
		expected string
	}{
		{name: "severe deficit", bmi: 15.0, expected: "🚨 Выраженный дефицит массы тела"},
		{name: "underweight", bmi: 17.0, expected: "⚠️ Недостаточная масса тела"},
		{name: "normal lower bound", bmi: 18.5, expected: "✅ Нормальная масса тела"},
		{name: "normal", bmi: 22.0, expected: "✅ Нормальная масса тела"},
		{name: "overweight", bmi: 27.5, expected: "⚠️ Избыточная масса тела (предожирение)"},
		{name: "obesity I", bmi: 32.0, expected: "🚨 Ожирение I степени"},
		{name: "obesity II", bmi: 37.0, expected: "🚨 Ожирение II степени"},
		{name: "obesity III", bmi: 45.0, expected: "🚨 Ожирение III степени"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BMICategory(tt.bmi))
		})
	}
}

func TestCalculateBMR(t *testing.T) {
	// Male: 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	assert.InDelta(t, 1648.75, CalculateBMR(70, 175, 30, constants.GenderMale), 0.01)
	// Female: 10*60 + 6.25*165 - 5*25 - 161 = 1345.25
	assert.InDelta(t, 1345.25, CalculateBMR(60, 165, 25, constants.GenderFemale), 0.01)
}

func TestCalculateTDEE(t *testing.T) {
	bmr := CalculateBMR(70, 175, 30, constants.GenderMale)

	assert.InDelta(t, bmr*1.2, CalculateTDEE(70, 175, 30, constants.GenderMale, constants.ActivitySedentary), 0.01)
	assert.InDelta(t, bmr*1.55, CalculateTDEE(70, 175, 30, constants.GenderMale, constants.ActivityModerate), 0.01)
	// Unknown level falls back to sedentary
	assert.InDelta(t, bmr*1.2, CalculateTDEE(70, 175, 30, constants.GenderMale, "couch"), 0.01)
}

func TestGoalCalories(t *testing.T) {
	assert.InDelta(t, 1700, GoalCalories(2000, constants.GoalLose), 0.01)
	assert.InDelta(t, 2000, GoalCalories(2000, constants.GoalMaintain), 0.01)
	assert.InDelta(t, 2300, GoalCalories(2000, constants.GoalGain), 0.01)
	assert.InDelta(t, 2000, GoalCalories(2000, "unknown"), 0.01)
}

func TestCalculateMacros(t *testing.T) {
	m := CalculateMacros(2000, 70, constants.GoalLose)

	assert.Equal(t, 154, m.Protein) // 70 * 2.2
	assert.Equal(t, 616, m.ProteinCal)
	assert.Equal(t, 56, m.Fat) // 2000*0.25/9 rounded
	assert.InDelta(t, 500, m.FatCal, 0.01)
	assert.Equal(t, 221, m.Carbs) // (2000-616-500)/4 rounded
}

func TestProgressPercent(t *testing.T) {
	assert.Equal(t, 50, ProgressPercent(1000, 2000))
	assert.Equal(t, 100, ProgressPercent(3000, 2000))
	assert.Equal(t, 0, ProgressPercent(100, 0))
}

func TestProgressBar(t *testing.T) {
	assert.Equal(t, "▰▰▰▰▰▱▱▱▱▱", ProgressBar(1000, 2000))
	assert.Equal(t, "▰▰▰▰▰▰▰▰▰▰", ProgressBar(2500, 2000))
	assert.Equal(t, "▱▱▱▱▱▱▱▱▱▱", ProgressBar(0, 2000))
}
