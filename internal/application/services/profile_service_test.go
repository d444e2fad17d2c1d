package services

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/domain/models"
	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/errors"
	"github.com/dietplanner/backend/pkg/formula"
	"github.com/dietplanner/backend/pkg/logger"
)

func newProfileService(t *testing.T) (*ProfileService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := NewProfileService(persistence.NewUserRepository(db), formula.NewEngine(), logger.NewNop())
	return svc, mock
}

func TestCompleteRegistration(t *testing.T) {
	svc, mock := newProfileService(t)

	mock.ExpectExec("UPDATE users SET").
		WithArgs("Иван", 30, "male", 175.0, 70.0, "moderate", "lose",
			2172.0, 154, 60, 253, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	summary, err := svc.CompleteRegistration(context.Background(), &models.User{
		ID:            42,
		Name:          "Иван",
		Age:           30,
		Gender:        "male",
		Height:        175,
		Weight:        70,
		ActivityLevel: "moderate",
		Goal:          "lose",
	})
	require.NoError(t, err)

	// BMR 1648.75, TDEE 2555.56, lose factor 0.85 -> 2172
	assert.InDelta(t, 2172, summary.User.GoalCalories, 0.001)
	assert.Equal(t, 154, summary.User.Protein)
	assert.Equal(t, 60, summary.User.Fat)
	assert.Equal(t, 253, summary.User.Carbs)
	assert.True(t, summary.User.RegistrationComplete)

	assert.InDelta(t, 22.86, summary.BMI, 0.01)
	assert.Equal(t, "Нормальный вес", summary.BMICategory)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRegistrationValidation(t *testing.T) {
	svc, _ := newProfileService(t)

	tests := []struct {
		name  string
		user  models.User
		field string
	}{
		{"age too low", models.User{Age: 10, Height: 175, Weight: 70, Gender: "male", ActivityLevel: "light", Goal: "lose"}, "age"},
		{"age too high", models.User{Age: 130, Height: 175, Weight: 70, Gender: "male", ActivityLevel: "light", Goal: "lose"}, "age"},
		{"height out of range", models.User{Age: 30, Height: 90, Weight: 70, Gender: "male", ActivityLevel: "light", Goal: "lose"}, "height"},
		{"weight out of range", models.User{Age: 30, Height: 175, Weight: 500, Gender: "male", ActivityLevel: "light", Goal: "lose"}, "weight"},
		{"bad gender", models.User{Age: 30, Height: 175, Weight: 70, Gender: "other", ActivityLevel: "light", Goal: "lose"}, "gender"},
		{"bad activity", models.User{Age: 30, Height: 175, Weight: 70, Gender: "male", ActivityLevel: "extreme", Goal: "lose"}, "activity_level"},
		{"bad goal", models.User{Age: 30, Height: 175, Weight: 70, Gender: "male", ActivityLevel: "light", Goal: "bulk"}, "goal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CompleteRegistration(context.Background(), &tt.user)
			require.Error(t, err)
			assert.True(t, errors.IsValidation(err))
		})
	}
}

func TestSetWaterGoalBounds(t *testing.T) {
	svc, mock := newProfileService(t)

	err := svc.SetWaterGoal(context.Background(), 42, 400)
	assert.True(t, errors.IsValidation(err))

	err = svc.SetWaterGoal(context.Background(), 42, 20000)
	assert.True(t, errors.IsValidation(err))

	mock.ExpectExec("UPDATE users SET water_goal").
		WithArgs(2500, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.SetWaterGoal(context.Background(), 42, 2500))
	assert.NoError(t, mock.ExpectationsWereMet())
}
