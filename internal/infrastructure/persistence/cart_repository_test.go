package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartRepository_TogglePurchased_ScopedToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE cart_items SET purchased = 1 - purchased WHERE id = \? AND user_id = \?`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCartRepository(db)
	assert.NoError(t, repo.TogglePurchased(context.Background(), 42, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCartRepository_Remove_ScopedToUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM cart_items WHERE id = \? AND user_id = \?`).
		WithArgs(int64(7), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewCartRepository(db)
	assert.NoError(t, repo.Remove(context.Background(), 42, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
