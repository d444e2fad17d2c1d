package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/domain/models"
)

func TestReminderRepository_Create_StoresNextRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	nextRun := "2026-08-29T09:00:00Z"
	mock.ExpectExec(`INSERT INTO reminders \(user_id, type, schedule, is_active, next_run_at\)`).
		WithArgs(int64(42), "water", "0 9 * * *", 1, nextRun).
		WillReturnResult(sqlmock.NewResult(3, 1))

	repo := NewReminderRepository(db)
	id, err := repo.Create(context.Background(), &models.Reminder{
		UserID:    42,
		Type:      "water",
		Schedule:  "0 9 * * *",
		IsActive:  true,
		NextRunAt: &nextRun,
	})

	assert.NoError(t, err)
	assert.Equal(t, int64(3), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReminderRepository_ListActive(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	next := "2026-08-29T09:00:00Z"
	mock.ExpectQuery(`SELECT id, user_id, type, schedule, is_active, last_run_at, next_run_at`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "type", "schedule", "is_active", "last_run_at", "next_run_at"}).
			AddRow(3, 42, "water", "0 9 * * *", true, nil, next))

	repo := NewReminderRepository(db)
	reminders, err := repo.ListActive(context.Background())

	assert.NoError(t, err)
	require.Len(t, reminders, 1)
	require.NotNil(t, reminders[0].NextRunAt)
	assert.Equal(t, next, *reminders[0].NextRunAt)
	assert.Nil(t, reminders[0].LastRunAt)
}
