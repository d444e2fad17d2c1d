package services

import (
	"context"
	"fmt"
	"math/rand"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/utils"
)

// RecipeService manages saved recipes and recipe generation
type RecipeService struct {
	recipes   *persistence.RecipeRepository
	users     *persistence.UserRepository
	generator ports.RecipeGenerator // nil when no API key is configured
	log       *zap.Logger
}

func NewRecipeService(recipes *persistence.RecipeRepository, users *persistence.UserRepository, generator ports.RecipeGenerator, log *zap.Logger) *RecipeService {
	return &RecipeService{recipes: recipes, users: users, generator: generator, log: log}
}

// Save validates and stores a recipe for a user
func (s *RecipeService) Save(ctx context.Context, rec *models.Recipe) (int64, error) {
	if rec.Name == "" {
		return 0, errors.NewValidationError("name", "название не может быть пустым")
	}
	if rec.Ingredients == "" {
		return 0, errors.NewValidationError("ingredients", "список ингредиентов не может быть пустым")
	}
	if rec.Calories < 0 || rec.Protein < 0 || rec.Fat < 0 || rec.Carbs < 0 {
		return 0, errors.NewValidationError("calories", "значения не могут быть отрицательными")
	}
	if rec.CreationDate == "" {
		rec.CreationDate = utils.Today()
	}
	return s.recipes.Save(ctx, rec)
}

// List returns the user's recipes, favorites first
func (s *RecipeService) List(ctx context.Context, userID int64, favoritesOnly bool) ([]models.Recipe, error) {
	return s.recipes.List(ctx, userID, favoritesOnly)
}

// Get returns one recipe, checking it belongs to the user
func (s *RecipeService) Get(ctx context.Context, userID, recipeID int64) (*models.Recipe, error) {
	rec, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil || rec.UserID != userID {
		return nil, errors.NewNotFoundError("recipe", fmt.Sprintf("%d", recipeID))
	}
	return rec, nil
}

// ToggleFavorite flips the favorite flag and returns the new state
func (s *RecipeService) ToggleFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	if _, err := s.Get(ctx, userID, recipeID); err != nil {
		return false, err
	}
	return s.recipes.ToggleFavorite(ctx, recipeID)
}

// Delete removes a recipe and its meal plan references
func (s *RecipeService) Delete(ctx context.Context, userID, recipeID int64) error {
	if _, err := s.Get(ctx, userID, recipeID); err != nil {
		return err
	}
	return s.recipes.Delete(ctx, recipeID)
}

// Generate produces a recipe for the user's goal. The AI generator is
// tried first; on failure a built-in template is used, so the feature
// works without credentials.
func (s *RecipeService) Generate(ctx context.Context, userID int64) (*models.Recipe, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	goal := constants.GoalMaintain
	var calories float64
	if user != nil {
		if user.Goal != "" {
			goal = user.Goal
		}
		calories = user.GoalCalories
	}

	if s.generator != nil {
		rec, genErr := s.generator.Generate(ctx, goal, calories)
		if genErr == nil {
			rec.UserID = userID
			rec.CreationDate = utils.Today()
			return rec, nil
		}
		s.log.Warn("recipe generation failed, using template",
			zap.Int64("user_id", userID), zap.Error(genErr))
	}

	return s.templateRecipe(userID, goal), nil
}

func (s *RecipeService) templateRecipe(userID int64, goal string) *models.Recipe {
	templates, ok := baseRecipes[goal]
	if !ok || len(templates) == 0 {
		templates = baseRecipes[constants.GoalMaintain]
	}

	rec := templates[rand.Intn(len(templates))]
	rec.UserID = userID
	rec.CreationDate = utils.Today()
	return &rec
}
