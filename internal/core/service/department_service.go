package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// DepartmentService implements department administration for managers.
type DepartmentService struct {
	repo   ports.DepartmentRepository
	logger zerolog.Logger
}

func NewDepartmentService(repo ports.DepartmentRepository, logger zerolog.Logger) *DepartmentService {
	return &DepartmentService{repo: repo, logger: logger}
}

func (s *DepartmentService) Create(ctx context.Context, actor domain.Identity, name string) (*domain.Department, error) {
	if !actor.Role.CanManageDepartments() {
		return nil, domain.ErrForbidden
	}

	id, err := s.repo.Create(ctx, name)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create department")
		return nil, err
	}

	s.logger.Info().Int64("department_id", id).Str("name", name).Msg("department created")
	return &domain.Department{ID: id, Name: name}, nil
}

func (s *DepartmentService) Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Department, error) {
	if !actor.Role.CanManageDepartments() {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetByID(ctx, id)
}

func (s *DepartmentService) List(ctx context.Context, actor domain.Identity) ([]domain.Department, error) {
	if !actor.Role.CanManageDepartments() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *DepartmentService) Rename(ctx context.Context, actor domain.Identity, id int64, name string) error {
	if !actor.Role.CanManageDepartments() {
		return domain.ErrForbidden
	}
	return s.repo.Rename(ctx, id, name)
}

// Delete removes a department. A department that has a manager assigned can
// only be deleted by that manager.
func (s *DepartmentService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	if !actor.Role.CanManageDepartments() {
		return domain.ErrForbidden
	}

	dep, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if dep.ManagerID != nil && *dep.ManagerID != actor.EmployeeID {
		return domain.ErrDepartmentHasOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("department_id", id).Msg("department deleted")
	return nil
}

func (s *DepartmentService) AssignEmployee(ctx context.Context, actor domain.Identity, employeeID, departmentID int64) error {
	if !actor.Role.CanManageDepartments() {
		return domain.ErrForbidden
	}

	if err := s.repo.AssignEmployee(ctx, employeeID, departmentID); err != nil {
		return err
	}

	s.logger.Info().
		Int64("employee_id", employeeID).
		Int64("department_id", departmentID).
		Msg("employee assigned to department")
	return nil
}

func (s *DepartmentService) UnassignEmployee(ctx context.Context, actor domain.Identity, employeeID int64) error {
	if !actor.Role.CanManageDepartments() {
		return domain.ErrForbidden
	}
	return s.repo.UnassignEmployee(ctx, employeeID)
}

func (s *DepartmentService) Employees(ctx context.Context, actor domain.Identity, departmentID int64) ([]domain.Employee, error) {
	if !actor.Role.CanManageDepartments() {
		return nil, domain.ErrForbidden
	}
	return s.repo.Employees(ctx, departmentID)
}

func (s *DepartmentService) Unassigned(ctx context.Context, actor domain.Identity) ([]domain.Employee, error) {
	if !actor.Role.CanManageDepartments() {
		return nil, domain.ErrForbidden
	}
	return s.repo.Unassigned(ctx)
}
