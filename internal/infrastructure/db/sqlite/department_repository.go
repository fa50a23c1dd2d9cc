package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// DepartmentRepository implements ports.DepartmentRepository on SQLite.
type DepartmentRepository struct {
	db *sql.DB
}

func NewDepartmentRepository(db *sql.DB) *DepartmentRepository {
	return &DepartmentRepository{db: db}
}

func (r *DepartmentRepository) Create(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `INSERT INTO departments (name) VALUES (?)`, name)
	if err != nil {
		return 0, fmt.Errorf("insert department: %w", err)
	}
	return res.LastInsertId()
}

func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*domain.Department, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT d.id, d.name, d.manager_id,
		        CASE WHEN e.id IS NOT NULL THEN e.first_name || ' ' || e.last_name ELSE '' END
		 FROM departments d
		 LEFT JOIN employees e ON d.manager_id = e.id
		 WHERE d.id = ?`, id)

	var (
		d         domain.Department
		managerID sql.NullInt64
	)
	if err := row.Scan(&d.ID, &d.Name, &managerID, &d.ManagerName); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, fmt.Errorf("find department: %w", err)
	}
	if managerID.Valid {
		d.ManagerID = &managerID.Int64
	}
	return &d, nil
}

func (r *DepartmentRepository) List(ctx context.Context) ([]domain.Department, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT d.id, d.name, d.manager_id,
		        CASE WHEN e.id IS NOT NULL THEN e.first_name || ' ' || e.last_name ELSE '' END
		 FROM departments d
		 LEFT JOIN employees e ON d.manager_id = e.id
		 ORDER BY d.id`)
	if err != nil {
		return nil, fmt.Errorf("list departments: %w", err)
	}
	defer rows.Close()

	var out []domain.Department
	for rows.Next() {
		var (
			d         domain.Department
			managerID sql.NullInt64
		)
		if err := rows.Scan(&d.ID, &d.Name, &managerID, &d.ManagerName); err != nil {
			return nil, fmt.Errorf("list departments: %w", err)
		}
		if managerID.Valid {
			d.ManagerID = &managerID.Int64
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *DepartmentRepository) Rename(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE departments SET name = ? WHERE id = ?`, name, id)
	if err != nil {
		return fmt.Errorf("rename department: %w", err)
	}
	return requireRows(res, domain.ErrDepartmentNotFound)
}

func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM departments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete department: %w", err)
	}
	return requireRows(res, domain.ErrDepartmentNotFound)
}

// AssignEmployee sets the department on an employee that has none.
func (r *DepartmentRepository) AssignEmployee(ctx context.Context, employeeID, departmentID int64) error {
	var current sql.NullInt64
	err := r.db.QueryRowContext(ctx,
		`SELECT department_id FROM employees WHERE id = ?`, employeeID).Scan(&current)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEmployeeNotFound
		}
		return fmt.Errorf("check department assignment: %w", err)
	}
	if current.Valid {
		return domain.ErrAlreadyInDepartment
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE employees SET department_id = ? WHERE id = ?`, departmentID, employeeID)
	if err != nil {
		return fmt.Errorf("assign department: %w", err)
	}
	return nil
}

func (r *DepartmentRepository) UnassignEmployee(ctx context.Context, employeeID int64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE employees SET department_id = NULL WHERE id = ? AND department_id IS NOT NULL`,
		employeeID)
	if err != nil {
		return fmt.Errorf("unassign department: %w", err)
	}
	return requireRows(res, domain.ErrNotInDepartment)
}

func (r *DepartmentRepository) Employees(ctx context.Context, departmentID int64) ([]domain.Employee, error) {
	return r.employeesWhere(ctx,
		`WHERE e.department_id = ? ORDER BY e.last_name, e.first_name`, departmentID)
}

func (r *DepartmentRepository) Unassigned(ctx context.Context) ([]domain.Employee, error) {
	return r.employeesWhere(ctx,
		`WHERE e.department_id IS NULL ORDER BY e.last_name, e.first_name`)
}

func (r *DepartmentRepository) employeesWhere(ctx context.Context, clause string, args ...any) ([]domain.Employee, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT e.id, e.first_name, e.last_name, e.age, e.address, e.phone, e.email,
		        e.contract_date, e.salary, e.role, e.department_id, COALESCE(d.name, '')
		 FROM employees e
		 LEFT JOIN departments d ON e.department_id = d.id `+clause, args...)
	if err != nil {
		return nil, fmt.Errorf("list department employees: %w", err)
	}
	defer rows.Close()

	var out []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("list department employees: %w", err)
		}
		out = append(out, *e)
	}
	return out, rows.Err()
}
