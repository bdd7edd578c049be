package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/msomdec/sales-dao/internal/domain"
	"github.com/msomdec/sales-dao/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// DB wraps the SQLite handle and hands out repositories bound to it.
type DB struct {
	SqlDB *sql.DB
}

var _ domain.Database = (*DB)(nil)

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Foreign keys are what rejects a seller pointing at a missing department.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// One connection: repositories bound to this DB share a single handle
	// and the pragmas above stay in effect.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate creates the department and seller tables if needed.
func (d *DB) Migrate(ctx context.Context) error {
	return migrations.Run(ctx, d.SqlDB)
}

func (d *DB) Close() error {
	return d.SqlDB.Close()
}

// Departments returns a DepartmentRepository bound to this database.
func (d *DB) Departments() *DepartmentRepository {
	return NewDepartmentRepository(d.SqlDB)
}

// Sellers returns a SellerRepository bound to this database.
func (d *DB) Sellers() *SellerRepository {
	return NewSellerRepository(d.SqlDB)
}
