package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMealPlanRepository_Remove_ScopedToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM meal_plan WHERE id = \? AND user_id = \?`).
		WithArgs(int64(9), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewMealPlanRepository(db)
	assert.NoError(t, repo.Remove(context.Background(), 42, 9))
	assert.NoError(t, mock.ExpectationsWereMet())
}
