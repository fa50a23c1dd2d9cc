package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// EmployeeRepository defines persistence operations for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, e *domain.Employee) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	// Update rewrites the mutable fields (name, age, contact data, salary).
	// Role and contract date are immutable after creation.
	Update(ctx context.Context, e *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	// EmailExists reports whether another employee already uses the email.
	// excludeID is ignored when zero.
	EmailExists(ctx context.Context, email string, excludeID int64) (bool, error)
}
