package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/msomdec/sales-dao/internal/domain"
)

var seedDepartments = []string{"Computers", "Electronics", "Fashion", "Books"}

var seedSellers = []struct {
	name       string
	email      string
	birthDate  time.Time
	baseSalary float64
	dept       int // index into seedDepartments
}{
	{"Bob Brown", "bob@gmail.com", time.Date(1998, 4, 21, 0, 0, 0, 0, time.UTC), 1000, 0},
	{"Maria Green", "maria@gmail.com", time.Date(1979, 12, 31, 0, 0, 0, 0, time.UTC), 3500, 1},
	{"Alex Grey", "alex@gmail.com", time.Date(1988, 1, 15, 0, 0, 0, 0, time.UTC), 2200, 0},
	{"Martha Red", "martha@gmail.com", time.Date(1993, 11, 30, 0, 0, 0, 0, time.UTC), 3000, 3},
	{"Donald Blue", "donald@gmail.com", time.Date(2000, 1, 9, 0, 0, 0, 0, time.UTC), 4000, 2},
	{"Alex Pink", "bob@gmail.com", time.Date(1997, 3, 4, 0, 0, 0, 0, time.UTC), 3000, 1},
}

// Seed fills an empty database with sample departments and sellers. It
// reports false without writing anything when departments already exist.
func Seed(ctx context.Context, depts domain.DepartmentRepository, sellers domain.SellerRepository) (bool, error) {
	existing, err := depts.FindAll(ctx)
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		return false, nil
	}

	created := make([]*domain.Department, len(seedDepartments))
	for i, name := range seedDepartments {
		d := &domain.Department{Name: name}
		if err := depts.Insert(ctx, d); err != nil {
			return false, fmt.Errorf("seed department %s: %w", name, err)
		}
		created[i] = d
	}

	for _, s := range seedSellers {
		seller := &domain.Seller{
			Name:       s.name,
			Email:      s.email,
			BirthDate:  s.birthDate,
			BaseSalary: s.baseSalary,
			Department: created[s.dept],
		}
		if err := sellers.Insert(ctx, seller); err != nil {
			return false, fmt.Errorf("seed seller %s: %w", s.name, err)
		}
	}
	return true, nil
}
