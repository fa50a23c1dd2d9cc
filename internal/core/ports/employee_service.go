package ports

import (
	"context"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// EmployeeInput carries all data needed to create an employee record.
type EmployeeInput struct {
	FirstName    string
	LastName     string
	Age          int
	Address      string
	Phone        string
	Email        string
	ContractDate time.Time
	Salary       float64
	Role         domain.Role
}

// UpdateEmployeeInput carries the mutable fields of an employee record.
// Role and contract date cannot be changed after creation.
type UpdateEmployeeInput struct {
	FirstName string
	LastName  string
	Age       int
	Address   string
	Phone     string
	Email     string
	Salary    float64
}

// EmployeeService defines use-case operations on employee records. Every
// call takes the authenticated actor; only HR admins may manage employees.
type EmployeeService interface {
	Create(ctx context.Context, actor domain.Identity, in EmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Employee, error)
	List(ctx context.Context, actor domain.Identity) ([]domain.Employee, error)
	Update(ctx context.Context, actor domain.Identity, id int64, in UpdateEmployeeInput) error
	Delete(ctx context.Context, actor domain.Identity, id int64) error
}
