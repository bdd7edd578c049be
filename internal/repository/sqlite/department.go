package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/sales-dao/internal/domain"
)

// DepartmentRepository implements domain.DepartmentRepository using SQLite.
type DepartmentRepository struct {
	db domain.DBTX
}

var _ domain.DepartmentRepository = (*DepartmentRepository)(nil)

// NewDepartmentRepository binds a DepartmentRepository to conn.
// A *DB allows one open connection, so while a *sql.Tx from it is open,
// repositories bound to that DB block until the Tx commits or rolls back.
// Bind every repository used inside the transaction to the Tx.
func NewDepartmentRepository(conn domain.DBTX) *DepartmentRepository {
	return &DepartmentRepository{db: conn}
}

func (r *DepartmentRepository) Insert(ctx context.Context, dept *domain.Department) error {
	const op = "insert department"
	if dept == nil || dept.ID != 0 {
		return persistenceErr(op, domain.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx, `INSERT INTO department (name) VALUES (?)`, dept.Name)
	if err != nil {
		return persistenceErr(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistenceErr(op, fmt.Errorf("rows affected: %w", err))
	}
	if err := requireOneRow(op, affected, domain.ErrNoRowsAffected); err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return persistenceErr(op, fmt.Errorf("get last insert id: %w", err))
	}

	dept.ID = id
	return nil
}

func (r *DepartmentRepository) Update(ctx context.Context, dept *domain.Department) error {
	const op = "update department"
	if dept == nil || dept.ID == 0 {
		return persistenceErr(op, domain.ErrInvalidInput)
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE department SET name = ? WHERE id = ?`, dept.Name, dept.ID,
	); err != nil {
		return persistenceErr(op, err)
	}
	return nil
}

func (r *DepartmentRepository) DeleteByID(ctx context.Context, id int64) error {
	const op = "delete department"
	result, err := r.db.ExecContext(ctx, `DELETE FROM department WHERE id = ?`, id)
	if err != nil {
		return persistenceErr(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistenceErr(op, fmt.Errorf("rows affected: %w", err))
	}
	return requireOneRow(op, affected, domain.ErrIDNotFound)
}

func (r *DepartmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	d := &domain.Department{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name FROM department WHERE id = ?`, id,
	).Scan(&d.ID, &d.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceErr("find department by id", err)
	}
	return d, nil
}

func (r *DepartmentRepository) FindAll(ctx context.Context) ([]domain.Department, error) {
	const op = "find all departments"
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM department`)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	defer rows.Close()

	depts, err := scanDepartments(rows)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return depts, nil
}
