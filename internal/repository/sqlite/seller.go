package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/msomdec/sales-dao/internal/domain"
)

// SellerRepository implements domain.SellerRepository using SQLite.
type SellerRepository struct {
	db domain.DBTX
}

var _ domain.SellerRepository = (*SellerRepository)(nil)

// NewSellerRepository binds a SellerRepository to conn.
// A *DB allows one open connection, so while a *sql.Tx from it is open,
// repositories bound to that DB block until the Tx commits or rolls back.
// Bind every repository used inside the transaction to the Tx.
func NewSellerRepository(conn domain.DBTX) *SellerRepository {
	return &SellerRepository{db: conn}
}

func hasPersistedDepartment(s *domain.Seller) bool {
	return s.Department != nil && s.Department.ID != 0
}

func (r *SellerRepository) Insert(ctx context.Context, seller *domain.Seller) error {
	const op = "insert seller"
	if seller == nil || seller.ID != 0 || !hasPersistedDepartment(seller) {
		return persistenceErr(op, domain.ErrInvalidInput)
	}

	result, err := r.db.ExecContext(ctx,
		`INSERT INTO seller (name, email, birth_date, base_salary, department_id)
		 VALUES (?, ?, ?, ?, ?)`,
		seller.Name, seller.Email, dateOnly(seller.BirthDate), seller.BaseSalary, seller.Department.ID,
	)
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

	seller.ID = id
	return nil
}

func (r *SellerRepository) Update(ctx context.Context, seller *domain.Seller) error {
	const op = "update seller"
	if seller == nil || seller.ID == 0 || !hasPersistedDepartment(seller) {
		return persistenceErr(op, domain.ErrInvalidInput)
	}

	if _, err := r.db.ExecContext(ctx,
		`UPDATE seller SET name = ?, email = ?, birth_date = ?, base_salary = ?, department_id = ?
		 WHERE id = ?`,
		seller.Name, seller.Email, dateOnly(seller.BirthDate), seller.BaseSalary, seller.Department.ID, seller.ID,
	); err != nil {
		return persistenceErr(op, err)
	}
	return nil
}

func (r *SellerRepository) DeleteByID(ctx context.Context, id int64) error {
	const op = "delete seller"
	result, err := r.db.ExecContext(ctx, `DELETE FROM seller WHERE id = ?`, id)
	if err != nil {
		return persistenceErr(op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return persistenceErr(op, fmt.Errorf("rows affected: %w", err))
	}
	return requireOneRow(op, affected, domain.ErrIDNotFound)
}

func (r *SellerRepository) FindByID(ctx context.Context, id int64) (*domain.Seller, error) {
	var sr sellerRow
	err := sr.scan(r.db.QueryRowContext(ctx,
		`SELECT `+sellerColumns+` `+sellerJoin+` WHERE s.id = ?`, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, persistenceErr("find seller by id", err)
	}

	s := sr.seller(&domain.Department{ID: sr.departmentID, Name: sr.departmentName})
	return &s, nil
}

func (r *SellerRepository) FindAll(ctx context.Context) ([]domain.Seller, error) {
	return r.list(ctx, "find all sellers",
		`SELECT `+sellerColumns+` `+sellerJoin+` ORDER BY s.name`)
}

func (r *SellerRepository) FindByDepartment(ctx context.Context, dept *domain.Department) ([]domain.Seller, error) {
	const op = "find sellers by department"
	if dept == nil || dept.ID == 0 {
		return nil, persistenceErr(op, domain.ErrInvalidInput)
	}
	return r.list(ctx, op,
		`SELECT `+sellerColumns+` `+sellerJoin+` WHERE s.department_id = ? ORDER BY s.name`, dept.ID)
}

func (r *SellerRepository) list(ctx context.Context, op, query string, args ...any) ([]domain.Seller, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	defer rows.Close()

	sellers, err := scanSellers(rows)
	if err != nil {
		return nil, persistenceErr(op, err)
	}
	return sellers, nil
}
