package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// AuthRepository implements ports.AuthRepository on SQLite.
type AuthRepository struct {
	db *sql.DB
}

func NewAuthRepository(db *sql.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) CreateUser(ctx context.Context, employeeID int64, passwordHash string) (*domain.User, error) {
	now := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (employee_id, password_hash, created_at) VALUES (?, ?, ?)`,
		employeeID, passwordHash, now.Format(time.RFC3339))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return &domain.User{ID: id, EmployeeID: employeeID, PasswordHash: passwordHash, CreatedAt: now}, nil
}

func (r *AuthRepository) Credentials(ctx context.Context, email string) (*domain.Employee, string, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.age, e.address, e.phone, e.email,
		        e.contract_date, e.salary, e.role, e.department_id, u.password_hash
		 FROM employees e
		 JOIN users u ON u.employee_id = e.id
		 WHERE e.email = ?`, email)

	var (
		e            domain.Employee
		contractDate string
		departmentID sql.NullInt64
		hash         string
	)
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Age, &e.Address, &e.Phone, &e.Email,
		&contractDate, &e.Salary, &e.Role, &departmentID, &hash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, "", domain.ErrUserNotFound
		}
		return nil, "", fmt.Errorf("find credentials: %w", err)
	}

	e.ContractDate, err = time.Parse(domain.DateFormat, contractDate)
	if err != nil {
		return nil, "", fmt.Errorf("find credentials: parse contract date: %w", err)
	}
	if departmentID.Valid {
		e.DepartmentID = &departmentID.Int64
	}

	return &e, hash, nil
}

func (r *AuthRepository) HasUserForEmployee(ctx context.Context, employeeID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM users WHERE employee_id = ?`, employeeID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	return n > 0, nil
}

// isUniqueViolation detects SQLite unique constraint failures without
// depending on driver-specific error types.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
