package services

import (
	"context"
	"fmt"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/nutrition"
	"github.com/dietplanner/backend/pkg/utils"
)

// StatsService aggregates diary and water data into reports and charts
type StatsService struct {
	diary  *DiaryService
	water  *WaterService
	users  *persistence.UserRepository
	admins *persistence.AdminRepository
	charts ports.ChartRenderer
}

func NewStatsService(diary *DiaryService, water *WaterService, users *persistence.UserRepository, admins *persistence.AdminRepository, charts ports.ChartRenderer) *StatsService {
	return &StatsService{diary: diary, water: water, users: users, admins: admins, charts: charts}
}

// NutritionReport compares today's intake against the profile targets
type NutritionReport struct {
	Totals          models.DailyTotals
	GoalCalories    float64
	GoalProtein     float64
	GoalFat         float64
	GoalCarbs       float64
	CaloriesPercent int
	ProteinPercent  int
	FatPercent      int
	CarbsPercent    int
	Goal            string
	Chart           []byte
}

// NutritionToday builds the daily nutrition report with its chart
func (s *StatsService) NutritionToday(ctx context.Context, userID int64) (*NutritionReport, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil || !user.RegistrationComplete {
		return nil, errors.NewNotFoundError("user", fmt.Sprintf("%d", userID))
	}

	totals, err := s.diary.Totals(ctx, userID, utils.Today())
	if err != nil {
		return nil, err
	}
	if totals.Calories == 0 {
		return nil, errors.NewNotFoundError("diary entries", utils.Today())
	}

	report := &NutritionReport{
		Totals:          *totals,
		GoalCalories:    user.GoalCalories,
		GoalProtein:     float64(user.Protein),
		GoalFat:         float64(user.Fat),
		GoalCarbs:       float64(user.Carbs),
		CaloriesPercent: nutrition.ProgressPercent(totals.Calories, user.GoalCalories),
		ProteinPercent:  nutrition.ProgressPercent(totals.Protein, float64(user.Protein)),
		FatPercent:      nutrition.ProgressPercent(totals.Fat, float64(user.Fat)),
		CarbsPercent:    nutrition.ProgressPercent(totals.Carbs, float64(user.Carbs)),
		Goal:            user.Goal,
	}

	chart, err := s.charts.NutritionChart(*totals,
		user.GoalCalories, float64(user.Protein), float64(user.Fat), float64(user.Carbs))
	if err != nil {
		return nil, err
	}
	report.Chart = chart
	return report, nil
}

// WaterReport is the weekly water view with its chart
type WaterReport struct {
	Stats *WeekStats
	Chart []byte
}

// WaterWeek builds the weekly water report with its chart
func (s *StatsService) WaterWeek(ctx context.Context, userID int64) (*WaterReport, error) {
	stats, err := s.water.Week(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !stats.HasData {
		return nil, errors.NewNotFoundError("water entries", fmt.Sprintf("%d", userID))
	}

	chart, err := s.charts.WaterChart(stats.Days, stats.Goal)
	if err != nil {
		return nil, err
	}
	return &WaterReport{Stats: stats, Chart: chart}, nil
}

// Usage returns the admin overview counters
func (s *StatsService) Usage(ctx context.Context) (*models.UsageSummary, error) {
	return s.admins.UsageSummary(ctx)
}
