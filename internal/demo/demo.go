// Package demo walks the department and seller repositories through a
// scripted sequence of calls and prints what each one returns.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/msomdec/sales-dao/internal/domain"
)

// Runner drives one DepartmentRepository and one SellerRepository.
type Runner struct {
	Departments domain.DepartmentRepository
	Sellers     domain.SellerRepository
	Out         io.Writer
	// Now stamps the demo seller's birth date.
	Now func() time.Time
}

// Options selects the rows the delete steps remove. Zero skips a step.
type Options struct {
	DeleteDepartmentID int64
	DeleteSellerID     int64
}

// NewRunner creates a Runner that writes to out.
func NewRunner(depts domain.DepartmentRepository, sellers domain.SellerRepository, out io.Writer) *Runner {
	return &Runner{Departments: depts, Sellers: sellers, Out: out, Now: time.Now}
}

// Run executes the department sequence followed by the seller sequence.
// It stops at the first repository error.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if err := r.RunDepartments(ctx, opts.DeleteDepartmentID); err != nil {
		return fmt.Errorf("department demo: %w", err)
	}
	if err := r.RunSellers(ctx, opts.DeleteSellerID); err != nil {
		return fmt.Errorf("seller demo: %w", err)
	}
	return nil
}

// RunDepartments: findById, findAll, insert, update, delete.
func (r *Runner) RunDepartments(ctx context.Context, deleteID int64) error {
	r.header("department findById")
	dept, err := r.Departments.FindByID(ctx, 2)
	if err != nil {
		return err
	}
	r.printDepartment(dept)

	r.header("department findAll")
	all, err := r.Departments.FindAll(ctx)
	if err != nil {
		return err
	}
	for i := range all {
		r.printDepartment(&all[i])
	}

	r.header("department insert")
	games := &domain.Department{Name: "Games"}
	if err := r.Departments.Insert(ctx, games); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Inserted! New id = %d\n", games.ID)

	r.header("department update")
	dept, err = r.Departments.FindByID(ctx, 1)
	if err != nil {
		return err
	}
	if dept == nil {
		fmt.Fprintln(r.Out, "Department 1 not found, skipping update")
	} else {
		dept.Name = "Music"
		if err := r.Departments.Update(ctx, dept); err != nil {
			return err
		}
		fmt.Fprintln(r.Out, "Update succeeded")
	}

	r.header("department delete")
	return r.delete(ctx, deleteID, r.Departments.DeleteByID)
}

// RunSellers: findById, findByDepartment, findAll, insert, update, delete.
func (r *Runner) RunSellers(ctx context.Context, deleteID int64) error {
	r.header("seller findById")
	seller, err := r.Sellers.FindByID(ctx, 3)
	if err != nil {
		return err
	}
	r.printSeller(seller)

	r.header("seller findByDepartment")
	dept := &domain.Department{ID: 2}
	list, err := r.Sellers.FindByDepartment(ctx, dept)
	if err != nil {
		return err
	}
	r.printSellers(list)

	r.header("seller findAll")
	list, err = r.Sellers.FindAll(ctx)
	if err != nil {
		return err
	}
	r.printSellers(list)

	r.header("seller insert")
	greg := &domain.Seller{
		Name:       "Greg",
		Email:      "greg@gmail.com",
		BirthDate:  r.Now(),
		BaseSalary: 4000.0,
		Department: dept,
	}
	if err := r.Sellers.Insert(ctx, greg); err != nil {
		return err
	}
	fmt.Fprintf(r.Out, "Inserted! New id = %d\n", greg.ID)

	r.header("seller update")
	seller, err = r.Sellers.FindByID(ctx, 1)
	if err != nil {
		return err
	}
	if seller == nil {
		fmt.Fprintln(r.Out, "Seller 1 not found, skipping update")
	} else {
		seller.Name = "Koji Kondo"
		if err := r.Sellers.Update(ctx, seller); err != nil {
			return err
		}
		fmt.Fprintln(r.Out, "Update succeeded")
	}

	r.header("seller delete")
	return r.delete(ctx, deleteID, r.Sellers.DeleteByID)
}

func (r *Runner) delete(ctx context.Context, id int64, del func(context.Context, int64) error) error {
	if id == 0 {
		fmt.Fprintln(r.Out, "No id given, skipping deletion")
		return nil
	}
	if err := del(ctx, id); err != nil {
		return err
	}
	fmt.Fprintln(r.Out, "Deletion completed")
	return nil
}

func (r *Runner) header(title string) {
	fmt.Fprintf(r.Out, "\n--- %s ---\n", title)
}

func (r *Runner) printDepartment(d *domain.Department) {
	if d == nil {
		fmt.Fprintln(r.Out, "not found")
		return
	}
	fmt.Fprintf(r.Out, "Department [id=%d, name=%s]\n", d.ID, d.Name)
}

func (r *Runner) printSeller(s *domain.Seller) {
	if s == nil {
		fmt.Fprintln(r.Out, "not found")
		return
	}
	fmt.Fprintf(r.Out, "Seller [id=%d, name=%s, email=%s, birthDate=%s, baseSalary=%.2f, department=%s]\n",
		s.ID, s.Name, s.Email, s.BirthDate.Format(time.DateOnly), s.BaseSalary, s.Department.Name)
}

func (r *Runner) printSellers(list []domain.Seller) {
	for i := range list {
		r.printSeller(&list[i])
	}
}
