package database

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/config"
)

func TestNewConnection_SQLitePragmas(t *testing.T) {
	cfg := &config.Config{
		DBDriver: "sqlite",
		DBPath:   filepath.Join(t.TempDir(), "diet.db"),
	}

	conn, err := newConnection(cfg)
	require.NoError(t, err)
	defer conn.Close()

	var journalMode string
	require.NoError(t, conn.DB().QueryRow(`PRAGMA journal_mode`).Scan(&journalMode))
	assert.Equal(t, "wal", journalMode)

	var busyTimeout int
	require.NoError(t, conn.DB().QueryRow(`PRAGMA busy_timeout`).Scan(&busyTimeout))
	assert.Equal(t, 5000, busyTimeout)
}

func TestNewConnection_RejectsUnknownDriver(t *testing.T) {
	_, err := newConnection(&config.Config{DBDriver: "postgres"})
	assert.Error(t, err)
}
