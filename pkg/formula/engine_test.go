package formula

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEngine_Defaults(t *testing.T) {
	engine := NewEngine()

	tests := []struct {
		name     string
		formula  string
		env      map[string]interface{}
		expected float64
	}{
		{
			name:     "male bmr",
			formula:  ExprBMRMale,
			env:      map[string]interface{}{"weight": 70.0, "height": 175.0, "age": 30},
			expected: 1648.75,
		},
		{
			name:     "female bmr",
			formula:  ExprBMRFemale,
			env:      map[string]interface{}{"weight": 60.0, "height": 165.0, "age": 25},
			expected: 1345.25,
		},
		{
			name:     "goal calories",
			formula:  ExprGoalCalories,
			env:      map[string]interface{}{"tdee": 2000.0, "goal_factor": 0.85},
			expected: 1700.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := engine.Evaluate(tt.formula, tt.env)
			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, result, 0.01)
		})
	}
}

func TestEngine_Override(t *testing.T) {
	engine := NewEngine()

	err := engine.Override(ExprGoalCalories, "tdee * goal_factor - 100")
	assert.NoError(t, err)

	result, err := engine.Evaluate(ExprGoalCalories, map[string]interface{}{
		"tdee":        2000.0,
		"goal_factor": 1.0,
	})
	assert.NoError(t, err)
	assert.InDelta(t, 1900.0, result, 0.01)
}

func TestEngine_OverrideInvalid(t *testing.T) {
	engine := NewEngine()

	assert.Error(t, engine.Override(ExprGoalCalories, "tdee *"))
	assert.Error(t, engine.Override("no_such_formula", "1+1"))
}

func TestEngine_UnknownFormula(t *testing.T) {
	engine := NewEngine()

	_, err := engine.Evaluate("missing", nil)
	assert.Error(t, err)
}

func TestEngine_NonNumericResult(t *testing.T) {
	engine := NewEngine()
	assert.NoError(t, engine.Override(ExprGoalCalories, `"text"`))

	_, err := engine.Evaluate(ExprGoalCalories, nil)
	assert.Error(t, err)
}
