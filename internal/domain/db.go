package domain

import (
	"context"
	"database/sql"
)

// Database defines lifecycle operations for the underlying database.
// Each implementation owns its own schema files and strategy.
type Database interface {
	Migrate(ctx context.Context) error
	Close() error
}

// DBTX is the statement execution surface a repository is bound to.
// *sql.DB, *sql.Conn and *sql.Tx all satisfy it, so a caller that wants
// several repository calls in one transaction passes the *sql.Tx.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
