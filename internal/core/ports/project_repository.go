package ports

import (
	"context"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// ProjectRepository defines persistence operations for projects and the
// employee-project assignment table.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id int64) error

	Assign(ctx context.Context, employeeID, projectID int64, on time.Time) (int64, error)
	Unassign(ctx context.Context, employeeID, projectID int64) error
	Assignments(ctx context.Context) ([]domain.ProjectAssignment, error)
	ProjectsOf(ctx context.Context, employeeID int64) ([]domain.ProjectAssignment, error)
	IsAssigned(ctx context.Context, employeeID, projectID int64) (bool, error)
}
