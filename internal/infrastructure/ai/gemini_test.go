package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRecipe(t *testing.T) {
	text := "```json\n" + `{
		"name": "Куриная грудка с овощами",
		"ingredients": ["Куриная грудка - 200 г", "Брокколи - 150 г"],
		"instructions": "1. Отварить грудку.\n2. Приготовить брокколи на пару.",
		"calories": 350,
		"protein": 45,
		"fat": 8,
		"carbs": 12
	}` + "\n```"

	recipe, err := parseRecipe(text)
	require.NoError(t, err)

	assert.Equal(t, "Куриная грудка с овощами", recipe.Name)
	assert.Equal(t, "Куриная грудка - 200 г\nБрокколи - 150 г", recipe.Ingredients)
	assert.InDelta(t, 350, recipe.Calories, 0.001)
	assert.InDelta(t, 45, recipe.Protein, 0.001)
}

func TestParseRecipeNoJSON(t *testing.T) {
	_, err := parseRecipe("Вот отличный рецепт без структуры")
	assert.Error(t, err)
}

func TestParseRecipeIncomplete(t *testing.T) {
	_, err := parseRecipe(`{"name": "", "ingredients": []}`)
	assert.Error(t, err)
}
