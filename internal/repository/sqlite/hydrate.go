package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/msomdec/sales-dao/internal/domain"
)

// sellerColumns is the select list every seller query shares. The order
// must match sellerRow.scan.
const sellerColumns = `s.id, s.name, s.email, s.birth_date, s.base_salary, d.id, d.name`

const sellerJoin = `FROM seller s INNER JOIN department d ON s.department_id = d.id`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// sellerRow is one denormalized result row: the seller's columns plus
// its department's columns.
type sellerRow struct {
	id             int64
	name           string
	email          string
	birthDate      dateColumn
	baseSalary     float64
	departmentID   int64
	departmentName string
}

func (sr *sellerRow) scan(s rowScanner) error {
	return s.Scan(&sr.id, &sr.name, &sr.email, &sr.birthDate, &sr.baseSalary,
		&sr.departmentID, &sr.departmentName)
}

func (sr *sellerRow) seller(dept *domain.Department) domain.Seller {
	return domain.Seller{
		ID:         sr.id,
		Name:       sr.name,
		Email:      sr.email,
		BirthDate:  time.Time(sr.birthDate),
		BaseSalary: sr.baseSalary,
		Department: dept,
	}
}

// dateColumn scans a DATE column stored as "YYYY-MM-DD". The driver hands
// DATE values back either as text or already parsed into a time.Time; both
// come out as midnight UTC of that day.
type dateColumn time.Time

func (d *dateColumn) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = dateColumn(time.Date(v.Year(), v.Month(), v.Day(), 0, 0, 0, 0, time.UTC))
		return nil
	case string:
		return d.parse(v)
	case []byte:
		return d.parse(string(v))
	default:
		return fmt.Errorf("unsupported date value %T", src)
	}
}

func (d *dateColumn) parse(s string) error {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}
	*d = dateColumn(t)
	return nil
}

// dateOnly is the bind value for a DATE column. Only the calendar day of t,
// in t's own location, is kept.
func dateOnly(t time.Time) string {
	return t.Format(time.DateOnly)
}

// departmentArena hands out one *domain.Department per department id for
// the lifetime of a single query. It must not outlive that query.
type departmentArena map[int64]*domain.Department

func (a departmentArena) resolve(id int64, name string) *domain.Department {
	if d, ok := a[id]; ok {
		return d
	}
	d := &domain.Department{ID: id, Name: name}
	a[id] = d
	return d
}

// scanSellers hydrates a joined seller/department row stream. Sellers that
// share a department id share the same *domain.Department.
func scanSellers(rows *sql.Rows) ([]domain.Seller, error) {
	arena := make(departmentArena)
	sellers := []domain.Seller{}
	for rows.Next() {
		var sr sellerRow
		if err := sr.scan(rows); err != nil {
			return nil, fmt.Errorf("scan seller: %w", err)
		}
		sellers = append(sellers, sr.seller(arena.resolve(sr.departmentID, sr.departmentName)))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sellers, nil
}

func scanDepartments(rows *sql.Rows) ([]domain.Department, error) {
	depts := []domain.Department{}
	for rows.Next() {
		var d domain.Department
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, fmt.Errorf("scan department: %w", err)
		}
		depts = append(depts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return depts, nil
}
