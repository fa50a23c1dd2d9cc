package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// DepartmentRepository defines persistence operations for departments and
// department membership.
type DepartmentRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Department, error)
	List(ctx context.Context) ([]domain.Department, error)
	Rename(ctx context.Context, id int64, name string) error
	Delete(ctx context.Context, id int64) error

	// AssignEmployee sets the employee's department. Fails with
	// domain.ErrAlreadyInDepartment when one is already set.
	AssignEmployee(ctx context.Context, employeeID, departmentID int64) error
	// UnassignEmployee clears the employee's department.
	UnassignEmployee(ctx context.Context, employeeID int64) error
	Employees(ctx context.Context, departmentID int64) ([]domain.Employee, error)
	Unassigned(ctx context.Context) ([]domain.Employee, error)
}
