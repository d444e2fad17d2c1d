package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeightRepository_Upsert_UpdatesExisting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE weight_records SET weight`).
		WithArgs(71.5, int64(42), "2025-03-05").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewWeightRepository(db)
	assert.NoError(t, repo.Upsert(context.Background(), 42, "2025-03-05", 71.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeightRepository_Upsert_InsertsWhenNoSameDayRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE weight_records SET weight`).
		WithArgs(71.5, int64(42), "2025-03-05").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO weight_records`).
		WithArgs(int64(42), "2025-03-05", 71.5).
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := NewWeightRepository(db)
	assert.NoError(t, repo.Upsert(context.Background(), 42, "2025-03-05", 71.5))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWeightRepository_History(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, date, weight FROM weight_records`).
		WithArgs(int64(42), "2025-02-03", "2025-03-05").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "weight"}).
			AddRow(2, 42, "2025-03-05", 71.5).
			AddRow(1, 42, "2025-03-01", 72.0))

	repo := NewWeightRepository(db)
	records, err := repo.History(context.Background(), 42, "2025-02-03", "2025-03-05")

	assert.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2025-03-05", records[0].Date)
	assert.Equal(t, 72.0, records[1].Weight)
}

func TestWeightRepository_Latest_None(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, user_id, date, weight FROM weight_records`).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "date", "weight"}))

	repo := NewWeightRepository(db)
	latest, err := repo.Latest(context.Background(), 42)

	assert.NoError(t, err)
	assert.Nil(t, latest)
}
