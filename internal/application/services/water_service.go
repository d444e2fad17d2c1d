package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/nutrition"
	"github.com/dietplanner/backend/pkg/utils"
)

// WaterService tracks daily water intake against the user's goal
type WaterService struct {
	water *persistence.WaterRepository
	users *persistence.UserRepository
	log   *zap.Logger
}

func NewWaterService(water *persistence.WaterRepository, users *persistence.UserRepository, log *zap.Logger) *WaterService {
	return &WaterService{water: water, users: users, log: log}
}

// DayStatus is today's intake against the goal
type DayStatus struct {
	Total   int
	Goal    int
	Percent int
	Bar     string
}

// WeekStats summarizes the last seven days
type WeekStats struct {
	Days    []models.WaterDay
	Goal    int
	Total   int
	Average float64
	MaxDay  *models.WaterDay
	MinDay  *models.WaterDay
	HasData bool
}

// Add records a water intake amount for today
func (s *WaterService) Add(ctx context.Context, userID int64, amount int) (*DayStatus, error) {
	if amount <= 0 {
		return nil, errors.NewValidationError("amount", "количество должно быть больше нуля")
	}
	if amount > constants.MaxWaterEntry {
		return nil, errors.NewValidationError("amount",
			fmt.Sprintf("за один раз можно добавить не более %d мл", constants.MaxWaterEntry))
	}

	if err := s.water.Add(ctx, userID, utils.Today(), amount); err != nil {
		return nil, err
	}
	return s.Today(ctx, userID)
}

// Today returns the current day's status
func (s *WaterService) Today(ctx context.Context, userID int64) (*DayStatus, error) {
	total, err := s.water.DailyTotal(ctx, userID, utils.Today())
	if err != nil {
		return nil, err
	}
	goal, err := s.goal(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DayStatus{
		Total:   total,
		Goal:    goal,
		Percent: nutrition.ProgressPercent(float64(total), float64(goal)),
		Bar:     nutrition.ProgressBar(float64(total), float64(goal)),
	}, nil
}

// Week returns the last seven days with aggregates
func (s *WaterService) Week(ctx context.Context, userID int64) (*WeekStats, error) {
	days, err := s.water.Week(ctx, userID, utils.LastNDays(7))
	if err != nil {
		return nil, err
	}
	goal, err := s.goal(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats := &WeekStats{Days: days, Goal: goal}
	for i := range days {
		day := &days[i]
		stats.Total += day.Amount
		if day.Amount == 0 {
			continue
		}
		stats.HasData = true
		if stats.MaxDay == nil || day.Amount > stats.MaxDay.Amount {
			stats.MaxDay = day
		}
		if stats.MinDay == nil || day.Amount < stats.MinDay.Amount {
			stats.MinDay = day
		}
	}
	if len(days) > 0 {
		stats.Average = float64(stats.Total) / float64(len(days))
	}
	return stats, nil
}

func (s *WaterService) goal(ctx context.Context, userID int64) (int, error) {
	user, err := s.users.Get(ctx, userID)
	if err != nil {
		return 0, err
	}
	if user == nil || user.WaterGoal <= 0 {
		return constants.DefaultWaterGoal, nil
	}
	return user.WaterGoal, nil
}
