package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

type stubDepartmentRepo struct {
	departments map[int64]*domain.Department
	members     map[int64]int64 // employee ID → department ID
	nextID      int64
}

func newStubDepartmentRepo(departments ...*domain.Department) *stubDepartmentRepo {
	r := &stubDepartmentRepo{
		departments: make(map[int64]*domain.Department),
		members:     make(map[int64]int64),
	}
	for _, dep := range departments {
		r.departments[dep.ID] = dep
		if dep.ID > r.nextID {
			r.nextID = dep.ID
		}
	}
	return r
}

func (r *stubDepartmentRepo) Create(_ context.Context, name string) (int64, error) {
	r.nextID++
	r.departments[r.nextID] = &domain.Department{ID: r.nextID, Name: name}
	return r.nextID, nil
}

func (r *stubDepartmentRepo) GetByID(_ context.Context, id int64) (*domain.Department, error) {
	dep, ok := r.departments[id]
	if !ok {
		return nil, domain.ErrDepartmentNotFound
	}
	clone := *dep
	return &clone, nil
}

func (r *stubDepartmentRepo) List(_ context.Context) ([]domain.Department, error) {
	out := make([]domain.Department, 0, len(r.departments))
	for _, dep := range r.departments {
		out = append(out, *dep)
	}
	return out, nil
}

func (r *stubDepartmentRepo) Rename(_ context.Context, id int64, name string) error {
	dep, ok := r.departments[id]
	if !ok {
		return domain.ErrDepartmentNotFound
	}
	dep.Name = name
	return nil
}

func (r *stubDepartmentRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.departments[id]; !ok {
		return domain.ErrDepartmentNotFound
	}
	delete(r.departments, id)
	return nil
}

func (r *stubDepartmentRepo) AssignEmployee(_ context.Context, employeeID, departmentID int64) error {
	if _, ok := r.departments[departmentID]; !ok {
		return domain.ErrDepartmentNotFound
	}
	if _, assigned := r.members[employeeID]; assigned {
		return domain.ErrAlreadyInDepartment
	}
	r.members[employeeID] = departmentID
	return nil
}

func (r *stubDepartmentRepo) UnassignEmployee(_ context.Context, employeeID int64) error {
	if _, assigned := r.members[employeeID]; !assigned {
		return domain.ErrNotInDepartment
	}
	delete(r.members, employeeID)
	return nil
}

func (r *stubDepartmentRepo) Employees(_ context.Context, _ int64) ([]domain.Employee, error) {
	return nil, nil
}

func (r *stubDepartmentRepo) Unassigned(_ context.Context) ([]domain.Employee, error) {
	return nil, nil
}

func manager() domain.Identity {
	return domain.Identity{EmployeeID: 2, Role: domain.RoleManager}
}

func TestDepartmentService_Create_Forbidden(t *testing.T) {
	svc := NewDepartmentService(newStubDepartmentRepo(), zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleHRAdmin, domain.RoleEmployee} {
		actor := domain.Identity{EmployeeID: 1, Role: role}
		if _, err := svc.Create(context.Background(), actor, "Engineering"); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestDepartmentService_CreateAndRename(t *testing.T) {
	svc := NewDepartmentService(newStubDepartmentRepo(), zerolog.Nop())

	dep, err := svc.Create(context.Background(), manager(), "Engineering")
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if err := svc.Rename(context.Background(), manager(), dep.ID, "Platform"); err != nil {
		t.Fatalf("Rename returned error: %v", err)
	}
	got, err := svc.Get(context.Background(), manager(), dep.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Name != "Platform" {
		t.Fatalf("expected renamed department, got %q", got.Name)
	}
}

func TestDepartmentService_Delete_OwnedByAnotherManager(t *testing.T) {
	ownerID := int64(9)
	repo := newStubDepartmentRepo(&domain.Department{ID: 1, Name: "Sales", ManagerID: &ownerID})
	svc := NewDepartmentService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), manager(), 1); !errors.Is(err, domain.ErrDepartmentHasOwner) {
		t.Fatalf("expected ErrDepartmentHasOwner, got %v", err)
	}
}

func TestDepartmentService_Delete_ByOwningManager(t *testing.T) {
	ownerID := manager().EmployeeID
	repo := newStubDepartmentRepo(&domain.Department{ID: 1, Name: "Sales", ManagerID: &ownerID})
	svc := NewDepartmentService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), manager(), 1); err != nil {
		t.Fatalf("owning manager must be able to delete: %v", err)
	}
}

func TestDepartmentService_Delete_NoManagerAssigned(t *testing.T) {
	repo := newStubDepartmentRepo(&domain.Department{ID: 1, Name: "Sales"})
	svc := NewDepartmentService(repo, zerolog.Nop())

	if err := svc.Delete(context.Background(), manager(), 1); err != nil {
		t.Fatalf("unowned department must be deletable by any manager: %v", err)
	}
}

func TestDepartmentService_AssignEmployee_OnlyWhenUnassigned(t *testing.T) {
	repo := newStubDepartmentRepo(
		&domain.Department{ID: 1, Name: "Sales"},
		&domain.Department{ID: 2, Name: "Support"},
	)
	svc := NewDepartmentService(repo, zerolog.Nop())

	if err := svc.AssignEmployee(context.Background(), manager(), 7, 1); err != nil {
		t.Fatalf("AssignEmployee returned error: %v", err)
	}
	if err := svc.AssignEmployee(context.Background(), manager(), 7, 2); !errors.Is(err, domain.ErrAlreadyInDepartment) {
		t.Fatalf("expected ErrAlreadyInDepartment, got %v", err)
	}

	if err := svc.UnassignEmployee(context.Background(), manager(), 7); err != nil {
		t.Fatalf("UnassignEmployee returned error: %v", err)
	}
	if err := svc.AssignEmployee(context.Background(), manager(), 7, 2); err != nil {
		t.Fatalf("re-assignment after unassign must succeed: %v", err)
	}
}

func TestDepartmentService_UnassignEmployee_NotInDepartment(t *testing.T) {
	svc := NewDepartmentService(newStubDepartmentRepo(), zerolog.Nop())

	if err := svc.UnassignEmployee(context.Background(), manager(), 7); !errors.Is(err, domain.ErrNotInDepartment) {
		t.Fatalf("expected ErrNotInDepartment, got %v", err)
	}
}
