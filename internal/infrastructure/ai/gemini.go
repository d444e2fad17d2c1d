// Package ai generates recipes with the Gemini API.
package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

// GeminiGenerator produces recipes tailored to a goal and calorie budget.
// It implements ports.RecipeGenerator.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator creates a Gemini-backed recipe generator
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if model == "" {
		model = "gemini-2.0-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client, model: model}, nil
}

var goalDescriptions = map[string]string{
	constants.GoalLose:     "снижение веса",
	constants.GoalMaintain: "поддержание веса",
	constants.GoalGain:     "набор мышечной массы",
}

type generatedRecipe struct {
	Name         string   `json:"name"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Fat          float64  `json:"fat"`
	Carbs        float64  `json:"carbs"`
}

// Generate asks the model for one recipe matching the goal and roughly
// a third of the daily calorie budget
func (g *GeminiGenerator) Generate(ctx context.Context, goal string, calories float64) (*models.Recipe, error) {
	description, ok := goalDescriptions[goal]
	if !ok {
		description = goalDescriptions[constants.GoalMaintain]
	}

	mealCalories := calories / 3
	prompt := fmt.Sprintf(
		`Придумай один рецепт здорового блюда на русском языке. Цель: %s. `+
			`Калорийность блюда: примерно %.0f ккал. `+
			`Ответь строго одним JSON-объектом без markdown с полями: `+
			`name (строка), ingredients (массив строк вида "Продукт - количество единица"), `+
			`instructions (строка, шаги через перенос строки), `+
			`calories, protein, fat, carbs (числа).`,
		description, mealCalories)

	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return nil, errors.NewExternalError("gemini", err)
	}

	text := result.Text()
	if text == "" {
		return nil, errors.NewExternalError("gemini", fmt.Errorf("empty response"))
	}

	recipe, err := parseRecipe(text)
	if err != nil {
		return nil, errors.NewExternalError("gemini", err)
	}
	return recipe, nil
}

// parseRecipe extracts the recipe JSON from model output, tolerating
// markdown fences around it
func parseRecipe(text string) (*models.Recipe, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var parsed generatedRecipe
	if err := json.Unmarshal([]byte(text[start:end+1]), &parsed); err != nil {
		return nil, fmt.Errorf("malformed recipe JSON: %w", err)
	}
	if parsed.Name == "" || len(parsed.Ingredients) == 0 {
		return nil, fmt.Errorf("incomplete recipe")
	}

	return &models.Recipe{
		Name:         parsed.Name,
		Ingredients:  strings.Join(parsed.Ingredients, "\n"),
		Instructions: parsed.Instructions,
		Calories:     parsed.Calories,
		Protein:      parsed.Protein,
		Fat:          parsed.Fat,
		Carbs:        parsed.Carbs,
	}, nil
}
