package domain

import (
	"context"
	"time"
)

// Seller is a salesperson belonging to exactly one department.
//
// Sellers returned by a single list call share one *Department per
// department id, so a change made through one seller's Department is
// visible through every other seller of that result set.
type Seller struct {
	ID         int64
	Name       string
	Email      string // Not validated
	BirthDate  time.Time
	BaseSalary float64
	Department *Department
}

// SellerRepository defines persistence operations for sellers.
type SellerRepository interface {
	Insert(ctx context.Context, seller *Seller) error
	Update(ctx context.Context, seller *Seller) error
	DeleteByID(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Seller, error)
	// FindAll returns every seller ordered by name.
	FindAll(ctx context.Context) ([]Seller, error)
	// FindByDepartment returns the sellers of dept ordered by name.
	FindByDepartment(ctx context.Context, dept *Department) ([]Seller, error)
}
