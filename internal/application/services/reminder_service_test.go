package services

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/infrastructure/persistence"
	"github.com/dietplanner/backend/pkg/errors"
)

func TestNextRun(t *testing.T) {
	after := time.Date(2026, 8, 28, 9, 30, 0, 0, time.UTC)

	// every day at 10:00
	next, err := NextRun("0 10 * * *", after)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), next)

	// already past today's slot, rolls to tomorrow
	next, err = NextRun("0 8 * * *", after)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 8, 29, 8, 0, 0, 0, time.UTC), next)
}

func TestNextRunInvalid(t *testing.T) {
	_, err := NextRun("not a cron", time.Now())
	assert.Error(t, err)

	// 6-field expressions are rejected
	_, err = NextRun("0 0 10 * * *", time.Now())
	assert.Error(t, err)
}

func TestReminderDeleteChecksOwnership(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	reminderRows := func() *sqlmock.Rows {
		return sqlmock.NewRows([]string{"id", "user_id", "type", "schedule", "is_active", "last_run_at", "next_run_at"}).
			AddRow(5, 42, "water", "0 9 * * *", true, nil, nil)
	}
	svc := NewReminderService(persistence.NewReminderRepository(db))

	// someone else's reminder id: nothing is deleted
	mock.ExpectQuery(`SELECT id, user_id, type, schedule`).
		WithArgs(int64(42)).WillReturnRows(reminderRows())
	err = svc.Delete(context.Background(), 42, 99)
	assert.True(t, errors.IsNotFound(err))

	// own reminder id: delete goes through
	mock.ExpectQuery(`SELECT id, user_id, type, schedule`).
		WithArgs(int64(42)).WillReturnRows(reminderRows())
	mock.ExpectExec(`DELETE FROM reminders`).
		WithArgs(int64(5)).WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, svc.Delete(context.Background(), 42, 5))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "💧 Время выпить стакан воды!", Message("water"))
	assert.Equal(t, "⏰ Напоминание", Message("unknown"))
}
