package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

// MealPlanService schedules recipes onto calendar days
type MealPlanService struct {
	plans   *persistence.MealPlanRepository
	recipes *persistence.RecipeRepository
	diary   *DiaryService
	log     *zap.Logger
}

func NewMealPlanService(plans *persistence.MealPlanRepository, recipes *persistence.RecipeRepository, diary *DiaryService, log *zap.Logger) *MealPlanService {
	return &MealPlanService{plans: plans, recipes: recipes, diary: diary, log: log}
}

// Add places a recipe into a meal slot on a date
func (s *MealPlanService) Add(ctx context.Context, userID, recipeID int64, mealType, date string) (int64, error) {
	if constants.MealOrder(mealType) >= len(constants.MealTypes) {
		return 0, errors.NewValidationError("meal_type", "неизвестный приём пищи")
	}
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return 0, errors.NewValidationError("date", "дата должна быть в формате ГГГГ-ММ-ДД")
	}

	rec, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	if rec == nil || rec.UserID != userID {
		return 0, errors.NewNotFoundError("recipe", fmt.Sprintf("%d", recipeID))
	}

	return s.plans.Add(ctx, userID, recipeID, mealType, date)
}

// Day returns the plan for a date in meal order
func (s *MealPlanService) Day(ctx context.Context, userID int64, date string) ([]models.MealPlanEntry, error) {
	return s.plans.Day(ctx, userID, date)
}

// DayTotals sums the planned nutrients for a date
func (s *MealPlanService) DayTotals(ctx context.Context, userID int64, date string) (models.DailyTotals, error) {
	entries, err := s.plans.Day(ctx, userID, date)
	if err != nil {
		return models.DailyTotals{}, err
	}

	var totals models.DailyTotals
	for _, e := range entries {
		totals.Calories += e.Calories
		totals.Protein += e.Protein
		totals.Fat += e.Fat
		totals.Carbs += e.Carbs
	}
	return totals, nil
}

// Remove deletes one planned entry
func (s *MealPlanService) Remove(ctx context.Context, userID, planID int64) error {
	return s.plans.Remove(ctx, userID, planID)
}

// ClearDay removes all planned entries for a date
func (s *MealPlanService) ClearDay(ctx context.Context, userID int64, date string) error {
	return s.plans.ClearDay(ctx, userID, date)
}

// LogToDiary copies a planned recipe into the food diary as an entry
func (s *MealPlanService) LogToDiary(ctx context.Context, userID, recipeID int64, mealType, date string) (int64, error) {
	rec, err := s.recipes.Get(ctx, recipeID)
	if err != nil {
		return 0, err
	}
	if rec == nil || rec.UserID != userID {
		return 0, errors.NewNotFoundError("recipe", fmt.Sprintf("%d", recipeID))
	}

	return s.diary.AddEntry(ctx, &models.FoodEntry{
		UserID:   userID,
		Date:     date,
		MealType: mealType,
		FoodName: rec.Name,
		Calories: rec.Calories,
		Protein:  rec.Protein,
		Fat:      rec.Fat,
		Carbs:    rec.Carbs,
	})
}
