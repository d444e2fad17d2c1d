package services

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
)

// recentFoodsLimit caps the quick-add suggestion list
const recentFoodsLimit = 5

// DiaryService manages the food diary
type DiaryService struct {
	diary *persistence.DiaryRepository
	users *persistence.UserRepository
	log   *zap.Logger
}

func NewDiaryService(diary *persistence.DiaryRepository, users *persistence.UserRepository, log *zap.Logger) *DiaryService {
	return &DiaryService{diary: diary, users: users, log: log}
}

// DayView is one diary day grouped by meal with running totals
type DayView struct {
	Date    string
	Meals   map[string][]models.FoodEntry
	Totals  models.DailyTotals
	Targets *models.User
}

// AddEntry validates and stores a diary record
func (s *DiaryService) AddEntry(ctx context.Context, e *models.FoodEntry) (int64, error) {
	if constants.MealOrder(e.MealType) >= len(constants.MealTypes) {
		return 0, errors.NewValidationError("meal_type", "неизвестный приём пищи")
	}
	if e.FoodName == "" {
		return 0, errors.NewValidationError("food_name", "название не может быть пустым")
	}
	if e.Calories < 0 || e.Protein < 0 || e.Fat < 0 || e.Carbs < 0 {
		return 0, errors.NewValidationError("calories", "значения не могут быть отрицательными")
	}

	id, err := s.diary.Add(ctx, e)
	if err != nil {
		return 0, err
	}
	s.log.Debug("diary entry added",
		zap.Int64("user_id", e.UserID),
		zap.String("meal", e.MealType),
		zap.Float64("calories", e.Calories))
	return id, nil
}

// Day returns the full diary view for a date
func (s *DiaryService) Day(ctx context.Context, userID int64, date string) (*DayView, error) {
	entries, err := s.diary.DailyEntries(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	totals, err := s.diary.DailyTotals(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	meals := make(map[string][]models.FoodEntry)
	for _, e := range entries {
		meals[e.MealType] = append(meals[e.MealType], e)
	}

	return &DayView{
		Date:    date,
		Meals:   meals,
		Totals:  *totals,
		Targets: user,
	}, nil
}

// Totals returns the summed nutrients for a date
func (s *DiaryService) Totals(ctx context.Context, userID int64, date string) (*models.DailyTotals, error) {
	return s.diary.DailyTotals(ctx, userID, date)
}

// ClearDay removes all entries for a date
func (s *DiaryService) ClearDay(ctx context.Context, userID int64, date string) error {
	return s.diary.ClearDay(ctx, userID, date)
}

// RecentFoods returns distinct previously-logged foods for quick re-adding
func (s *DiaryService) RecentFoods(ctx context.Context, userID int64) ([]models.RecentFood, error) {
	return s.diary.RecentFoods(ctx, userID, recentFoodsLimit)
}

// CaloriesByDate returns per-date calorie sums for the given dates,
// in the input order
func (s *DiaryService) CaloriesByDate(ctx context.Context, userID int64, dates []string) ([]float64, error) {
	byDate, err := s.diary.CaloriesByDate(ctx, userID, dates)
	if err != nil {
		return nil, err
	}
	result := make([]float64, len(dates))
	for i, d := range dates {
		result[i] = byDate[d]
	}
	return result, nil
}

// SortedMealTypes returns the meal types present in a view, in day order
func (v *DayView) SortedMealTypes() []string {
	types := make([]string, 0, len(v.Meals))
	for t := range v.Meals {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool {
		return constants.MealOrder(types[i]) < constants.MealOrder(types[j])
	})
	return types
}
