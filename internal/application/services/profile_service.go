package services

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/constants"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/formula"
	"github.com/dietplanner/backend/pkg/nutrition"
)

// ProfileService manages user registration and profile targets
type ProfileService struct {
	users   *persistence.UserRepository
	formula *formula.Engine
	log     *zap.Logger
}

func NewProfileService(users *persistence.UserRepository, engine *formula.Engine, log *zap.Logger) *ProfileService {
	return &ProfileService{users: users, formula: engine, log: log}
}

// ProfileSummary is the computed view of a completed profile
type ProfileSummary struct {
	User        *models.User
	BMI         float64
	BMICategory string
}

// StartRegistration ensures a user row exists. Returns true if the
// user was created now.
func (s *ProfileService) StartRegistration(ctx context.Context, userID int64, name string) (bool, error) {
	created, err := s.users.Create(ctx, userID, name)
	if err != nil {
		return false, err
	}
	if created {
		s.log.Info("new user registered", zap.Int64("user_id", userID))
	}
	return created, nil
}

// Get returns the user profile, nil if unknown
func (s *ProfileService) Get(ctx context.Context, userID int64) (*models.User, error) {
	return s.users.Get(ctx, userID)
}

// ValidateAge checks the registration age bounds
func (s *ProfileService) ValidateAge(age int) error {
	if age < constants.MinAge || age > constants.MaxAge {
		return errors.NewValidationError("age",
			fmt.Sprintf("возраст должен быть от %d до %d лет", constants.MinAge, constants.MaxAge))
	}
	return nil
}

// ValidateHeight checks the registration height bounds (cm)
func (s *ProfileService) ValidateHeight(height float64) error {
	if height < constants.MinHeight || height > constants.MaxHeight {
		return errors.NewValidationError("height",
			fmt.Sprintf("рост должен быть от %d до %d см", constants.MinHeight, constants.MaxHeight))
	}
	return nil
}

// ValidateWeight checks the registration weight bounds (kg)
func (s *ProfileService) ValidateWeight(weight float64) error {
	if weight < constants.MinWeight || weight > constants.MaxWeight {
		return errors.NewValidationError("weight",
			fmt.Sprintf("вес должен быть от %d до %d кг", constants.MinWeight, constants.MaxWeight))
	}
	return nil
}

// CompleteRegistration validates the collected answers, computes the
// calorie and macro targets and persists the profile
func (s *ProfileService) CompleteRegistration(ctx context.Context, u *models.User) (*ProfileSummary, error) {
	if err := s.ValidateAge(u.Age); err != nil {
		return nil, err
	}
	if err := s.ValidateHeight(u.Height); err != nil {
		return nil, err
	}
	if err := s.ValidateWeight(u.Weight); err != nil {
		return nil, err
	}
	if u.Gender != constants.GenderMale && u.Gender != constants.GenderFemale {
		return nil, errors.NewValidationError("gender", "неизвестный пол")
	}
	if _, ok := constants.ActivityMultipliers[u.ActivityLevel]; !ok {
		return nil, errors.NewValidationError("activity_level", "неизвестный уровень активности")
	}
	if _, ok := constants.GoalCalorieFactors[u.Goal]; !ok {
		return nil, errors.NewValidationError("goal", "неизвестная цель")
	}

	goalCalories, err := s.computeGoalCalories(u)
	if err != nil {
		return nil, err
	}
	u.GoalCalories = math.Round(goalCalories)

	macros := nutrition.CalculateMacros(u.GoalCalories, u.Weight, u.Goal)
	u.Protein = macros.Protein
	u.Fat = macros.Fat
	u.Carbs = macros.Carbs
	if u.WaterGoal == 0 {
		u.WaterGoal = constants.DefaultWaterGoal
	}
	u.RegistrationComplete = true

	if err := s.users.SaveProfile(ctx, u); err != nil {
		return nil, err
	}

	s.log.Info("profile completed",
		zap.Int64("user_id", u.ID),
		zap.Float64("goal_calories", u.GoalCalories))

	return s.summarize(u), nil
}

// Summary returns the computed profile view for a completed user
func (s *ProfileService) Summary(ctx context.Context, userID int64) (*ProfileSummary, error) {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user", fmt.Sprintf("%d", userID))
	}
	return s.summarize(u), nil
}

// Recalculate refreshes the calorie and macro targets from the stored
// profile. Called after anything that changes an input, e.g. a new
// weigh-in.
func (s *ProfileService) Recalculate(ctx context.Context, userID int64) error {
	u, err := s.users.Get(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil || !u.RegistrationComplete {
		return nil
	}

	goalCalories, err := s.computeGoalCalories(u)
	if err != nil {
		return err
	}
	u.GoalCalories = math.Round(goalCalories)

	macros := nutrition.CalculateMacros(u.GoalCalories, u.Weight, u.Goal)
	u.Protein = macros.Protein
	u.Fat = macros.Fat
	u.Carbs = macros.Carbs

	return s.users.SaveProfile(ctx, u)
}

// SetWaterGoal updates the daily water target
func (s *ProfileService) SetWaterGoal(ctx context.Context, userID int64, goal int) error {
	if goal < constants.MinWaterGoal || goal > constants.MaxWaterGoal {
		return errors.NewValidationError("water_goal",
			fmt.Sprintf("цель должна быть от %d до %d мл", constants.MinWaterGoal, constants.MaxWaterGoal))
	}
	return s.users.SetWaterGoal(ctx, userID, goal)
}

// CompletedUserIDs lists users who finished registration
func (s *ProfileService) CompletedUserIDs(ctx context.Context) ([]int64, error) {
	return s.users.CompletedUserIDs(ctx)
}

// computeGoalCalories runs the BMR, TDEE and goal adjustment through
// the formula engine so admins can override the expressions
func (s *ProfileService) computeGoalCalories(u *models.User) (float64, error) {
	bmrExpr := formula.ExprBMRMale
	if u.Gender == constants.GenderFemale {
		bmrExpr = formula.ExprBMRFemale
	}

	bmr, err := s.formula.Evaluate(bmrExpr, map[string]interface{}{
		"weight": u.Weight,
		"height": u.Height,
		"age":    float64(u.Age),
	})
	if err != nil {
		return 0, errors.NewInternalError("BMR calculation failed", err)
	}

	multiplier, ok := constants.ActivityMultipliers[u.ActivityLevel]
	if !ok {
		multiplier = constants.ActivityMultipliers[constants.ActivitySedentary]
	}
	tdee := bmr * multiplier

	return s.formula.Evaluate(formula.ExprGoalCalories, map[string]interface{}{
		"tdee":        tdee,
		"goal_factor": constants.GoalCalorieFactors[u.Goal],
	})
}

func (s *ProfileService) summarize(u *models.User) *ProfileSummary {
	bmi := nutrition.CalculateBMI(u.Weight, u.Height)
	return &ProfileSummary{
		User:        u,
		BMI:         bmi,
		BMICategory: nutrition.BMICategory(bmi),
	}
}
