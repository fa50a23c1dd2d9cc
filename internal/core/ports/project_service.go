package ports

import (
	"context"
	"time"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// ProjectInput carries the data needed to create or update a project.
type ProjectInput struct {
	Name        string
	Description string
	StartDate   time.Time
}

// ProjectService defines use-case operations on projects. Only HR admins may
// administer projects; ProjectsOf is open to any authenticated caller so
// employees can pick a project when recording time.
type ProjectService interface {
	Create(ctx context.Context, actor domain.Identity, in ProjectInput) (*domain.Project, error)
	Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Project, error)
	List(ctx context.Context, actor domain.Identity) ([]domain.Project, error)
	Update(ctx context.Context, actor domain.Identity, id int64, in ProjectInput) error
	Delete(ctx context.Context, actor domain.Identity, id int64) error

	// Assign links an employee to a project. A nil date defaults to today.
	Assign(ctx context.Context, actor domain.Identity, employeeID, projectID int64, on *time.Time) error
	Unassign(ctx context.Context, actor domain.Identity, employeeID, projectID int64) error
	Assignments(ctx context.Context, actor domain.Identity) ([]domain.ProjectAssignment, error)
	ProjectsOf(ctx context.Context, employeeID int64) ([]domain.ProjectAssignment, error)
}
