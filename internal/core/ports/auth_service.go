package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// AuthService implements credential registration and login.
type AuthService interface {
	// Register creates credentials for an existing employee. It is rejected
	// with domain.ErrRegistrationClosed while public registration is off.
	Register(ctx context.Context, employeeID int64, password string) (*domain.User, error)

	// Login authenticates by email and password and returns a signed token
	// plus the employee the credentials belong to.
	Login(ctx context.Context, email, password string) (string, *domain.Employee, error)
}

// AdminService owns mutable administration state. The public-registration
// flag is explicit state with a getter and setter, injected where needed.
type AdminService interface {
	RegistrationEnabled() bool
	SetRegistrationEnabled(enabled bool)
}
