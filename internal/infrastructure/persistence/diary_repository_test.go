package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/domain/models"
)

func TestDiaryRepository_Add(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO food_entries`).
		WithArgs(int64(42), "2025-03-05", "Завтрак", "Овсянка", 150.0, 5.0, 3.0, 27.0).
		WillReturnResult(sqlmock.NewResult(11, 1))

	repo := NewDiaryRepository(db)
	id, err := repo.Add(context.Background(), &models.FoodEntry{
		UserID:   42,
		Date:     "2025-03-05",
		MealType: "Завтрак",
		FoodName: "Овсянка",
		Calories: 150,
		Protein:  5,
		Fat:      3,
		Carbs:    27,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(11), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDiaryRepository_DailyTotals(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT COALESCE\(SUM\(calories\), 0\)`).
		WithArgs(int64(42), "2025-03-05").
		WillReturnRows(sqlmock.NewRows([]string{"c", "p", "f", "cb"}).
			AddRow(1450.0, 88.0, 45.0, 160.0))

	repo := NewDiaryRepository(db)
	totals, err := repo.DailyTotals(context.Background(), 42, "2025-03-05")

	assert.NoError(t, err)
	assert.Equal(t, 1450.0, totals.Calories)
	assert.Equal(t, 88.0, totals.Protein)
}

func TestDiaryRepository_RecentFoods(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT MAX\(id\), food_name`).
		WithArgs(int64(42), 5).
		WillReturnRows(sqlmock.NewRows([]string{"id", "food_name", "calories", "protein", "fat", "carbs"}).
			AddRow(9, "Гречка", 132.0, 4.5, 1.1, 25.0).
			AddRow(7, "Творог", 120.0, 17.0, 5.0, 2.0))

	repo := NewDiaryRepository(db)
	foods, err := repo.RecentFoods(context.Background(), 42, 5)

	assert.NoError(t, err)
	require.Len(t, foods, 2)
	assert.Equal(t, "Гречка", foods[0].FoodName)
}

func TestDiaryRepository_ClearDay(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM food_entries`).
		WithArgs(int64(42), "2025-03-05").
		WillReturnResult(sqlmock.NewResult(0, 3))

	repo := NewDiaryRepository(db)
	assert.NoError(t, repo.ClearDay(context.Background(), 42, "2025-03-05"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
