package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// EmployeeRepository implements ports.EmployeeRepository on SQLite.
type EmployeeRepository struct {
	db *sql.DB
}

func NewEmployeeRepository(db *sql.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO employees (first_name, last_name, age, address, phone, email,
		                        contract_date, salary, role)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.FirstName, e.LastName, e.Age, e.Address, e.Phone, e.Email,
		e.ContractDate.Format(domain.DateFormat), e.Salary, string(e.Role))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrEmailTaken
		}
		return 0, fmt.Errorf("insert employee: %w", err)
	}
	return res.LastInsertId()
}

func (r *EmployeeRepository) GetByID(ctx context.Context, id int64) (*domain.Employee, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.age, e.address, e.phone, e.email,
		        e.contract_date, e.salary, e.role, e.department_id, COALESCE(d.name, '')
		 FROM employees e
		 LEFT JOIN departments d ON e.department_id = d.id
		 WHERE e.id = ?`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("find employee: %w", err)
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.age, e.address, e.phone, e.email,
		        e.contract_date, e.salary, e.role, e.department_id, COALESCE(d.name, '')
		 FROM employees e
		 LEFT JOIN departments d ON e.department_id = d.id
		 ORDER BY e.id`)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("list employees: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET first_name = ?, last_name = ?, age = ?, address = ?,
		        phone = ?, email = ?, salary = ?
		 WHERE id = ?`,
		e.FirstName, e.LastName, e.Age, e.Address, e.Phone, e.Email, e.Salary, e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("update employee: %w", err)
	}
	return requireRows(res, domain.ErrEmployeeNotFound)
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM employees WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete employee: %w", err)
	}
	return requireRows(res, domain.ErrEmployeeNotFound)
}

func (r *EmployeeRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	var n int
	var err error
	if excludeID > 0 {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM employees WHERE email = ? AND id != ?`, email, excludeID).Scan(&n)
	} else {
		err = r.db.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM employees WHERE email = ?`, email).Scan(&n)
	}
	if err != nil {
		return false, fmt.Errorf("count emails: %w", err)
	}
	return n > 0, nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var (
		e            domain.Employee
		contractDate string
		departmentID sql.NullInt64
	)
	err := row.Scan(&e.ID, &e.FirstName, &e.LastName, &e.Age, &e.Address, &e.Phone, &e.Email,
		&contractDate, &e.Salary, &e.Role, &departmentID, &e.Department)
	if err != nil {
		return nil, err
	}

	e.ContractDate, err = time.Parse(domain.DateFormat, contractDate)
	if err != nil {
		return nil, fmt.Errorf("parse contract date: %w", err)
	}
	if departmentID.Valid {
		e.DepartmentID = &departmentID.Int64
	}
	return &e, nil
}

// requireRows maps a zero-row result to notFound.
func requireRows(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
