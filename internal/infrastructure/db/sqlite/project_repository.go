package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// ProjectRepository implements ports.ProjectRepository on SQLite.
type ProjectRepository struct {
	db *sql.DB
}

func NewProjectRepository(db *sql.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, description, start_date) VALUES (?, ?, ?)`,
		p.Name, p.Description, p.StartDate.Format(domain.DateFormat))
	if err != nil {
		return 0, fmt.Errorf("insert project: %w", err)
	}
	return res.LastInsertId()
}

func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, start_date FROM projects WHERE id = ?`, id)

	p, err := scanProject(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}
	return p, nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]domain.Project, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, start_date FROM projects ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var out []domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("list projects: %w", err)
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, description = ?, start_date = ? WHERE id = ?`,
		p.Name, p.Description, p.StartDate.Format(domain.DateFormat), p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return requireRows(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return requireRows(res, domain.ErrProjectNotFound)
}

func (r *ProjectRepository) Assign(ctx context.Context, employeeID, projectID int64, on time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO project_assignments (employee_id, project_id, assigned_on) VALUES (?, ?, ?)`,
		employeeID, projectID, on.Format(domain.DateFormat))
	if err != nil {
		if isUniqueViolation(err) {
			return 0, domain.ErrAlreadyAssigned
		}
		return 0, fmt.Errorf("insert assignment: %w", err)
	}
	return res.LastInsertId()
}

func (r *ProjectRepository) Unassign(ctx context.Context, employeeID, projectID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM project_assignments WHERE employee_id = ? AND project_id = ?`,
		employeeID, projectID)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	return requireRows(res, domain.ErrAssignmentNotFound)
}

func (r *ProjectRepository) Assignments(ctx context.Context) ([]domain.ProjectAssignment, error) {
	return r.assignmentsWhere(ctx, ``)
}

func (r *ProjectRepository) ProjectsOf(ctx context.Context, employeeID int64) ([]domain.ProjectAssignment, error) {
	return r.assignmentsWhere(ctx, `WHERE ap.employee_id = ?`, employeeID)
}

func (r *ProjectRepository) IsAssigned(ctx context.Context, employeeID, projectID int64) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM project_assignments WHERE employee_id = ? AND project_id = ?`,
		employeeID, projectID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check assignment: %w", err)
	}
	return n > 0, nil
}

func (r *ProjectRepository) assignmentsWhere(ctx context.Context, clause string, args ...any) ([]domain.ProjectAssignment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT ap.id, ap.employee_id, e.first_name || ' ' || e.last_name,
		        ap.project_id, p.name, ap.assigned_on
		 FROM project_assignments ap
		 JOIN employees e ON ap.employee_id = e.id
		 JOIN projects p ON ap.project_id = p.id `+clause+`
		 ORDER BY p.name, e.last_name`, args...)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var out []domain.ProjectAssignment
	for rows.Next() {
		var (
			a          domain.ProjectAssignment
			assignedOn string
		)
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.EmployeeName, &a.ProjectID, &a.ProjectName, &assignedOn)
		if err != nil {
			return nil, fmt.Errorf("list assignments: %w", err)
		}
		a.AssignedOn, err = time.Parse(domain.DateFormat, assignedOn)
		if err != nil {
			return nil, fmt.Errorf("list assignments: parse date: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func scanProject(row rowScanner) (*domain.Project, error) {
	var (
		p         domain.Project
		startDate string
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &startDate); err != nil {
		return nil, err
	}

	var err error
	p.StartDate, err = time.Parse(domain.DateFormat, startDate)
	if err != nil {
		return nil, fmt.Errorf("parse start date: %w", err)
	}
	return &p, nil
}
