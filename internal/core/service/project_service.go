package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// ProjectService implements project administration for HR admins.
type ProjectService struct {
	repo   ports.ProjectRepository
	logger zerolog.Logger
}

func NewProjectService(repo ports.ProjectRepository, logger zerolog.Logger) *ProjectService {
	return &ProjectService{repo: repo, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, actor domain.Identity, in ports.ProjectInput) (*domain.Project, error) {
	if !actor.Role.CanManageProjects() {
		return nil, domain.ErrForbidden
	}

	p := &domain.Project{
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
	}
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create project")
		return nil, err
	}
	p.ID = id

	s.logger.Info().Int64("project_id", id).Str("name", in.Name).Msg("project created")
	return p, nil
}

func (s *ProjectService) Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Project, error) {
	if !actor.Role.CanManageProjects() {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetByID(ctx, id)
}

func (s *ProjectService) List(ctx context.Context, actor domain.Identity) ([]domain.Project, error) {
	if !actor.Role.CanManageProjects() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *ProjectService) Update(ctx context.Context, actor domain.Identity, id int64, in ports.ProjectInput) error {
	if !actor.Role.CanManageProjects() {
		return domain.ErrForbidden
	}
	return s.repo.Update(ctx, &domain.Project{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		StartDate:   in.StartDate,
	})
}

func (s *ProjectService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	if !actor.Role.CanManageProjects() {
		return domain.ErrForbidden
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("project_id", id).Msg("project deleted")
	return nil
}

func (s *ProjectService) Assign(ctx context.Context, actor domain.Identity, employeeID, projectID int64, on *time.Time) error {
	if !actor.Role.CanManageProjects() {
		return domain.ErrForbidden
	}

	assignedOn := time.Now().UTC()
	if on != nil {
		assignedOn = *on
	}

	if _, err := s.repo.Assign(ctx, employeeID, projectID, assignedOn); err != nil {
		return err
	}

	s.logger.Info().
		Int64("employee_id", employeeID).
		Int64("project_id", projectID).
		Msg("employee assigned to project")
	return nil
}

func (s *ProjectService) Unassign(ctx context.Context, actor domain.Identity, employeeID, projectID int64) error {
	if !actor.Role.CanManageProjects() {
		return domain.ErrForbidden
	}
	return s.repo.Unassign(ctx, employeeID, projectID)
}

func (s *ProjectService) Assignments(ctx context.Context, actor domain.Identity) ([]domain.ProjectAssignment, error) {
	if !actor.Role.CanManageProjects() {
		return nil, domain.ErrForbidden
	}
	return s.repo.Assignments(ctx)
}

// ProjectsOf lists the projects an employee is assigned to. No authorization
// check: employees need their own list when recording time.
func (s *ProjectService) ProjectsOf(ctx context.Context, employeeID int64) ([]domain.ProjectAssignment, error) {
	return s.repo.ProjectsOf(ctx, employeeID)
}
