package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// AuthRepository defines the interface for credential persistence.
type AuthRepository interface {
	// CreateUser stores credentials for an employee. Fails with
	// domain.ErrUserExists when the employee already has a user row.
	CreateUser(ctx context.Context, employeeID int64, passwordHash string) (*domain.User, error)

	// Credentials resolves a login email to the employee record and their
	// password hash. Returns domain.ErrUserNotFound when no credentialed
	// employee has that email.
	Credentials(ctx context.Context, email string) (*domain.Employee, string, error)

	HasUserForEmployee(ctx context.Context, employeeID int64) (bool, error)
}
