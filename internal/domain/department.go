package domain

import "context"

// Department groups sellers. ID is zero until the row has been inserted.
type Department struct {
	ID   int64
	Name string
}

// DepartmentRepository defines persistence operations for departments.
type DepartmentRepository interface {
	Insert(ctx context.Context, dept *Department) error
	// Update overwrites the name of an existing department. Updating an id
	// that has no row is not an error.
	Update(ctx context.Context, dept *Department) error
	DeleteByID(ctx context.Context, id int64) error
	// FindByID returns nil with a nil error when no row matches.
	FindByID(ctx context.Context, id int64) (*Department, error)
	FindAll(ctx context.Context) ([]Department, error)
}
