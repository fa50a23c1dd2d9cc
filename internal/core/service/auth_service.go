package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements credential registration and login.
type AuthService struct {
	repo      ports.AuthRepository
	employees ports.EmployeeRepository
	admin     ports.AdminService
	jwtSecret string
	tokenTTL  time.Duration
}

func NewAuthService(
	repo ports.AuthRepository,
	employees ports.EmployeeRepository,
	admin ports.AdminService,
	jwtSecret string,
	tokenTTL time.Duration,
) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		employees: employees,
		admin:     admin,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
	}
}

func (s *AuthService) Register(ctx context.Context, employeeID int64, password string) (*domain.User, error) {
	if !s.admin.RegistrationEnabled() {
		return nil, domain.ErrRegistrationClosed
	}
	if employeeID <= 0 || len(password) < minPasswordLength {
		return nil, domain.ErrInvalidCredentials
	}

	if _, err := s.employees.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	exists, err := s.repo.HasUserForEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return s.repo.CreateUser(ctx, employeeID, string(hash))
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.Employee, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	employee, hash, err := s.repo.Credentials(ctx, email)
	if err != nil {
		// An unknown email and a wrong password must be indistinguishable
		// to the caller, or login responses leak which accounts exist.
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(employee)
	if err != nil {
		return "", nil, err
	}

	return token, employee, nil
}

func (s *AuthService) generateToken(e *domain.Employee) (string, error) {
	claims := jwt.MapClaims{
		"employee_id": e.ID,
		"role":        string(e.Role),
		"exp":         time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
