package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"

	"github.com/dietplanner/backend/internal/config"
)

// Connection wraps the database handle.
// Note: sql.DB is already thread-safe and manages its own connection pool.
// We do NOT wrap it with additional mutexes as that causes deadlocks under
// high concurrency (writers waiting for connections block readers).
type Connection struct {
	db     *sql.DB
	driver string
}

var (
	instance *Connection
	once     sync.Once
	initErr  error
)

// GetInstance returns the singleton database connection
func GetInstance(cfg *config.Config) (*Connection, error) {
	once.Do(func() {
		instance, initErr = newConnection(cfg)
	})
	return instance, initErr
}

// newConnection opens a connection for the configured driver
func newConnection(cfg *config.Config) (*Connection, error) {
	var (
		db  *sql.DB
		err error
	)

	switch cfg.DBDriver {
	case "mysql":
		db, err = sql.Open("mysql", cfg.DBDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// MaxIdleConns matches MaxOpenConns to keep connections alive;
		// closing/reopening under load exhausts ephemeral ports.
		db.SetMaxOpenConns(100)
		db.SetMaxIdleConns(100)
		db.SetConnMaxLifetime(5 * time.Minute)
		db.SetConnMaxIdleTime(3 * time.Minute)

	case "sqlite":
		// modernc.org/sqlite reads pragmas from _pragma query parameters
		dsn := cfg.DBPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
		db, err = sql.Open("sqlite", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open database: %w", err)
		}
		// SQLite allows a single writer; serialize through one connection
		db.SetMaxOpenConns(1)

	default:
		return nil, fmt.Errorf("unsupported driver %q", cfg.DBDriver)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Connection{db: db, driver: cfg.DBDriver}, nil
}

// Driver returns the active driver name (sqlite or mysql)
func (c *Connection) Driver() string {
	return c.driver
}

// Query executes a SELECT query and returns rows
func (c *Connection) Query(query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.Query(query, args...)
}

// QueryContext executes a SELECT query with context
func (c *Connection) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	return c.db.QueryContext(ctx, query, args...)
}

// QueryRow executes a SELECT query that returns at most one row
func (c *Connection) QueryRow(query string, args ...interface{}) *sql.Row {
	return c.db.QueryRow(query, args...)
}

// QueryRowContext executes a SELECT query with context that returns at most one row
func (c *Connection) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return c.db.QueryRowContext(ctx, query, args...)
}

// Exec executes an INSERT, UPDATE, or DELETE query
func (c *Connection) Exec(query string, args ...interface{}) (sql.Result, error) {
	return c.db.Exec(query, args...)
}

// ExecContext executes an INSERT, UPDATE, or DELETE query with context
func (c *Connection) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	return c.db.ExecContext(ctx, query, args...)
}

// BeginTx starts a new transaction with context
func (c *Connection) BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	return c.db.BeginTx(ctx, opts)
}

// DB returns the underlying *sql.DB connection
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.db.Close()
}
