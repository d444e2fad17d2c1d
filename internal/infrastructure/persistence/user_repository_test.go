package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func userColumns() []string {
	return []string{"id", "name", "age", "gender", "height", "weight",
		"activity_level", "goal", "goal_calories", "protein", "fat", "carbs",
		"registration_date", "water_goal", "registration_complete"}
}

func TestUserRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, COALESCE\(name, ''\)`).
		WithArgs(2000, int64(42)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(42, "Иван", 30, "male", 175.0, 70.0, "moderate", "lose",
				1800.0, 154, 50, 200, "2025-01-01", 2000, 1))

	repo := NewUserRepository(db)
	user, err := repo.Get(context.Background(), 42)

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, "Иван", user.Name)
	assert.Equal(t, "lose", user.Goal)
	assert.True(t, user.RegistrationComplete)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, COALESCE\(name, ''\)`).
		WithArgs(2000, int64(99)).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	repo := NewUserRepository(db)
	user, err := repo.Get(context.Background(), 99)

	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUserRepository_Create_New(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, COALESCE\(name, ''\)`).
		WithArgs(2000, int64(42)).
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectExec(`INSERT INTO users`).
		WithArgs(int64(42), "Иван", 2000).
		WillReturnResult(sqlmock.NewResult(42, 1))

	repo := NewUserRepository(db)
	created, err := repo.Create(context.Background(), 42, "Иван")

	assert.NoError(t, err)
	assert.True(t, created)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_Create_Existing(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, COALESCE\(name, ''\)`).
		WithArgs(2000, int64(42)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(42, "Иван", 0, "", 0.0, 0.0, "", "", 0.0, 0, 0, 0, "", 2000, 0))

	repo := NewUserRepository(db)
	created, err := repo.Create(context.Background(), 42, "Иван")

	assert.NoError(t, err)
	assert.False(t, created)
}

func TestUserRepository_SetWaterGoal(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET water_goal`).
		WithArgs(2500, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewUserRepository(db)
	assert.NoError(t, repo.SetWaterGoal(context.Background(), 42, 2500))
	assert.NoError(t, mock.ExpectationsWereMet())
}
