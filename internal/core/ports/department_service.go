package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// DepartmentService defines use-case operations on departments. Only
// managers may administer departments and membership.
type DepartmentService interface {
	Create(ctx context.Context, actor domain.Identity, name string) (*domain.Department, error)
	Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Department, error)
	List(ctx context.Context, actor domain.Identity) ([]domain.Department, error)
	Rename(ctx context.Context, actor domain.Identity, id int64, name string) error
	// Delete removes a department. A department with a manager can only be
	// deleted by that manager.
	Delete(ctx context.Context, actor domain.Identity, id int64) error

	AssignEmployee(ctx context.Context, actor domain.Identity, employeeID, departmentID int64) error
	UnassignEmployee(ctx context.Context, actor domain.Identity, employeeID int64) error
	Employees(ctx context.Context, actor domain.Identity, departmentID int64) ([]domain.Employee, error)
	Unassigned(ctx context.Context, actor domain.Identity) ([]domain.Employee, error)
}
