package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

type stubAuthRepo struct {
	hashes map[int64]string // employee ID → password hash
	nextID int64
	emails *stubEmployeeRepo
}

func newStubAuthRepo(employees *stubEmployeeRepo) *stubAuthRepo {
	return &stubAuthRepo{hashes: make(map[int64]string), emails: employees}
}

func (r *stubAuthRepo) CreateUser(_ context.Context, employeeID int64, passwordHash string) (*domain.User, error) {
	if _, exists := r.hashes[employeeID]; exists {
		return nil, domain.ErrUserExists
	}
	r.hashes[employeeID] = passwordHash
	r.nextID++
	return &domain.User{ID: r.nextID, EmployeeID: employeeID, CreatedAt: time.Now().UTC()}, nil
}

func (r *stubAuthRepo) Credentials(_ context.Context, email string) (*domain.Employee, string, error) {
	for _, e := range r.emails.employees {
		if e.Email == email {
			hash, ok := r.hashes[e.ID]
			if !ok {
				return nil, "", domain.ErrUserNotFound
			}
			clone := *e
			return &clone, hash, nil
		}
	}
	return nil, "", domain.ErrUserNotFound
}

func (r *stubAuthRepo) HasUserForEmployee(_ context.Context, employeeID int64) (bool, error) {
	_, ok := r.hashes[employeeID]
	return ok, nil
}

type stubAdmin struct {
	enabled bool
}

func (a *stubAdmin) RegistrationEnabled() bool           { return a.enabled }
func (a *stubAdmin) SetRegistrationEnabled(enabled bool) { a.enabled = enabled }

func newAuthFixture(registrationOpen bool) (*AuthService, *stubAuthRepo, *stubAdmin) {
	employees := newStubEmployeeRepo(testEmployee())
	repo := newStubAuthRepo(employees)
	admin := &stubAdmin{enabled: registrationOpen}
	return NewAuthService(repo, employees, admin, "secret", time.Hour), repo, admin
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo, _ := newAuthFixture(true)

	user, err := svc.Register(context.Background(), 7, "s3cret-pass")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.EmployeeID != 7 {
		t.Fatalf("unexpected employee ID: %d", user.EmployeeID)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(repo.hashes[7]), []byte("s3cret-pass")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Closed(t *testing.T) {
	svc, _, admin := newAuthFixture(false)

	if _, err := svc.Register(context.Background(), 7, "s3cret-pass"); !errors.Is(err, domain.ErrRegistrationClosed) {
		t.Fatalf("expected ErrRegistrationClosed, got %v", err)
	}

	// Flipping the toggle re-opens registration without a restart.
	admin.SetRegistrationEnabled(true)
	if _, err := svc.Register(context.Background(), 7, "s3cret-pass"); err != nil {
		t.Fatalf("Register after re-opening failed: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc, _, _ := newAuthFixture(true)

	if _, err := svc.Register(context.Background(), 0, "s3cret-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad ID, got %v", err)
	}
	if _, err := svc.Register(context.Background(), 7, "short"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for short password, got %v", err)
	}
}

func TestAuthService_Register_UnknownEmployee(t *testing.T) {
	svc, _, _ := newAuthFixture(true)

	if _, err := svc.Register(context.Background(), 999, "s3cret-pass"); !errors.Is(err, domain.ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc, _, _ := newAuthFixture(true)

	if _, err := svc.Register(context.Background(), 7, "s3cret-pass"); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), 7, "other-pass1"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _, _ := newAuthFixture(true)
	if _, err := svc.Register(context.Background(), 7, "s3cret-pass"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	token, employee, err := svc.Login(context.Background(), "alice@example.com", "s3cret-pass")
	if err != nil {
		t.Fatalf("Login returned error: %v", err)
	}
	if employee.ID != 7 {
		t.Fatalf("unexpected employee: %+v", employee)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not parse: %v", err)
	}
	if claims["employee_id"] != float64(7) {
		t.Fatalf("unexpected employee_id claim: %v", claims["employee_id"])
	}
	if claims["role"] != "employee" {
		t.Fatalf("unexpected role claim: %v", claims["role"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(true)
	if _, err := svc.Register(context.Background(), 7, "s3cret-pass"); err != nil {
		t.Fatalf("registration failed: %v", err)
	}

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(true)

	// An unknown email must be indistinguishable from a wrong password, so
	// the response cannot be used to enumerate accounts.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "whatever"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_EmptyInput(t *testing.T) {
	svc, _, _ := newAuthFixture(true)

	if _, _, err := svc.Login(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
