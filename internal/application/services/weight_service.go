package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/domain/ports"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/utils"
)

// weightHistoryDays is the default reporting window
const weightHistoryDays = 30

// WeightService tracks weigh-ins and renders progress charts
type WeightService struct {
	weights *persistence.WeightRepository
	users   *persistence.UserRepository
	profile *ProfileService
	charts  ports.ChartRenderer
	log     *zap.Logger
}

func NewWeightService(weights *persistence.WeightRepository, users *persistence.UserRepository, profile *ProfileService, charts ports.ChartRenderer, log *zap.Logger) *WeightService {
	return &WeightService{weights: weights, users: users, profile: profile, charts: charts, log: log}
}

// Record stores today's weight. One record per day: a repeated
// weigh-in overwrites the earlier value. The profile's current
// weight follows the latest record.
func (s *WeightService) Record(ctx context.Context, userID int64, weight float64) error {
	if weight < constants.MinWeightRecord || weight > constants.MaxWeightRecord {
		return errors.NewValidationError("weight",
			fmt.Sprintf("вес должен быть от %d до %d кг", constants.MinWeightRecord, constants.MaxWeightRecord))
	}

	if err := s.weights.Upsert(ctx, userID, utils.Today(), weight); err != nil {
		return err
	}
	if err := s.users.UpdateWeight(ctx, userID, weight); err != nil {
		return err
	}
	// the calorie targets depend on weight
	if err := s.profile.Recalculate(ctx, userID); err != nil {
		return err
	}

	s.log.Debug("weight recorded", zap.Int64("user_id", userID), zap.Float64("weight", weight))
	return nil
}

// History returns records for the last N days, newest first
func (s *WeightService) History(ctx context.Context, userID int64, days int) ([]models.WeightRecord, error) {
	if days <= 0 {
		days = weightHistoryDays
	}
	from, err := utils.ShiftDate(utils.Today(), -days)
	if err != nil {
		return nil, err
	}
	return s.weights.History(ctx, userID, from, utils.Today())
}

// Latest returns the most recent record, nil if none
func (s *WeightService) Latest(ctx context.Context, userID int64) (*models.WeightRecord, error) {
	return s.weights.Latest(ctx, userID)
}

// Chart renders the weight history as a PNG line chart
func (s *WeightService) Chart(ctx context.Context, userID int64, days int) ([]byte, error) {
	records, err := s.History(ctx, userID, days)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.NewNotFoundError("weight records", fmt.Sprintf("%d", userID))
	}

	// history comes newest first, the chart wants chronological order
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return s.charts.WeightChart(records)
}

// Delta returns the change between the oldest and newest record in
// the window, and whether there was enough data
func (s *WeightService) Delta(ctx context.Context, userID int64, days int) (float64, bool, error) {
	records, err := s.History(ctx, userID, days)
	if err != nil {
		return 0, false, err
	}
	if len(records) < 2 {
		return 0, false, nil
	}
	newest := records[0].Weight
	oldest := records[len(records)-1].Weight
	return newest - oldest, true, nil
}
