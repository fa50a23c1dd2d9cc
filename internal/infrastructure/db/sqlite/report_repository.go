package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/hrsuite/hr-system/internal/core/ports"
)

// ReportRepository implements ports.ReportRepository on SQLite. Each query
// returns an ordered column list plus flat string rows ready for the
// plain-text table writer.
type ReportRepository struct {
	db *sql.DB
}

func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

func (r *ReportRepository) EmployeesByDepartment(ctx context.Context) (*ports.ReportData, error) {
	return r.query(ctx,
		[]string{"department", "employee_id", "first_name", "last_name", "role"},
		`SELECT COALESCE(d.name, 'unassigned'), e.id, e.first_name, e.last_name, e.role
		 FROM employees e
		 LEFT JOIN departments d ON e.department_id = d.id
		 ORDER BY d.name, e.last_name`)
}

func (r *ReportRepository) EmployeesByProject(ctx context.Context) (*ports.ReportData, error) {
	return r.query(ctx,
		[]string{"project", "employee_id", "first_name", "last_name", "assigned_on"},
		`SELECT p.name, e.id, e.first_name, e.last_name, ap.assigned_on
		 FROM project_assignments ap
		 JOIN employees e ON ap.employee_id = e.id
		 JOIN projects p ON ap.project_id = p.id
		 ORDER BY p.name, e.last_name`)
}

func (r *ReportRepository) AllEmployees(ctx context.Context) (*ports.ReportData, error) {
	return r.query(ctx,
		[]string{"employee_id", "first_name", "last_name", "age", "phone", "email", "salary", "role", "department"},
		`SELECT e.id, e.first_name, e.last_name, e.age, e.phone, e.email, e.salary, e.role,
		        COALESCE(d.name, '')
		 FROM employees e
		 LEFT JOIN departments d ON e.department_id = d.id
		 ORDER BY e.id`)
}

// query runs a statement whose select list matches columns positionally and
// renders every value as a string.
func (r *ReportRepository) query(ctx context.Context, columns []string, stmt string) (*ports.ReportData, error) {
	rows, err := r.db.QueryContext(ctx, stmt)
	if err != nil {
		return nil, fmt.Errorf("report query: %w", err)
	}
	defer rows.Close()

	data := &ports.ReportData{Columns: columns, Rows: []map[string]string{}}
	for rows.Next() {
		values := make([]sql.NullString, len(columns))
		dest := make([]any, len(columns))
		for i := range values {
			dest[i] = &values[i]
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("report query: %w", err)
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			row[col] = values[i].String
		}
		data.Rows = append(data.Rows, row)
	}
	return data, rows.Err()
}
