package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// EmployeeService implements employee record management for HR admins.
type EmployeeService struct {
	repo   ports.EmployeeRepository
	logger zerolog.Logger
}

func NewEmployeeService(repo ports.EmployeeRepository, logger zerolog.Logger) *EmployeeService {
	return &EmployeeService{repo: repo, logger: logger}
}

func (s *EmployeeService) Create(ctx context.Context, actor domain.Identity, in ports.EmployeeInput) (*domain.Employee, error) {
	if !actor.Role.CanManageEmployees() {
		return nil, domain.ErrForbidden
	}
	if !in.Role.Valid() {
		return nil, domain.ErrUnknownRole
	}

	taken, err := s.repo.EmailExists(ctx, in.Email, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailTaken
	}

	e := &domain.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Age:          in.Age,
		Address:      in.Address,
		Phone:        in.Phone,
		Email:        in.Email,
		ContractDate: in.ContractDate,
		Salary:       in.Salary,
		Role:         in.Role,
	}

	id, err := s.repo.Create(ctx, e)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create employee")
		return nil, err
	}
	e.ID = id

	s.logger.Info().Int64("employee_id", id).Str("role", string(in.Role)).Msg("employee created")
	return e, nil
}

func (s *EmployeeService) Get(ctx context.Context, actor domain.Identity, id int64) (*domain.Employee, error) {
	if !actor.Role.CanManageEmployees() {
		return nil, domain.ErrForbidden
	}
	return s.repo.GetByID(ctx, id)
}

func (s *EmployeeService) List(ctx context.Context, actor domain.Identity) ([]domain.Employee, error) {
	if !actor.Role.CanManageEmployees() {
		return nil, domain.ErrForbidden
	}
	return s.repo.List(ctx)
}

func (s *EmployeeService) Update(ctx context.Context, actor domain.Identity, id int64, in ports.UpdateEmployeeInput) error {
	if !actor.Role.CanManageEmployees() {
		return domain.ErrForbidden
	}

	taken, err := s.repo.EmailExists(ctx, in.Email, id)
	if err != nil {
		return err
	}
	if taken {
		return domain.ErrEmailTaken
	}

	e := &domain.Employee{
		ID:        id,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Age:       in.Age,
		Address:   in.Address,
		Phone:     in.Phone,
		Email:     in.Email,
		Salary:    in.Salary,
	}
	if err := s.repo.Update(ctx, e); err != nil {
		return err
	}

	s.logger.Info().Int64("employee_id", id).Msg("employee updated")
	return nil
}

func (s *EmployeeService) Delete(ctx context.Context, actor domain.Identity, id int64) error {
	if !actor.Role.CanManageEmployees() {
		return domain.ErrForbidden
	}
	if actor.EmployeeID == id {
		return domain.ErrSelfDelete
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("employee_id", id).Msg("employee deleted")
	return nil
}
