package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

func TestDepartmentRepository_CreateGetRename(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)

	id, err := repo.Create(context.Background(), "Engineering")
	require.NoError(t, err)

	d, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Engineering", d.Name)
	assert.Nil(t, d.ManagerID)
	assert.Empty(t, d.ManagerName)

	require.NoError(t, repo.Rename(context.Background(), id, "Platform"))
	d, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Platform", d.Name)
}

func TestDepartmentRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrDepartmentNotFound)
	require.ErrorIs(t, repo.Rename(context.Background(), 42, "X"), domain.ErrDepartmentNotFound)
	require.ErrorIs(t, repo.Delete(context.Background(), 42), domain.ErrDepartmentNotFound)
}

func TestDepartmentRepository_GetByID_ManagerName(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)
	deptID := seedDepartment(t, db, "Engineering")
	managerID := seedEmployee(t, db, "alice@example.com")

	_, err := db.Exec(`UPDATE departments SET manager_id = ? WHERE id = ?`, managerID, deptID)
	require.NoError(t, err)

	d, err := repo.GetByID(context.Background(), deptID)
	require.NoError(t, err)
	require.NotNil(t, d.ManagerID)
	assert.Equal(t, managerID, *d.ManagerID)
	assert.Equal(t, "Alice Reyes", d.ManagerName)

	departments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, departments, 1)
	assert.Equal(t, "Alice Reyes", departments[0].ManagerName)
}

func TestDepartmentRepository_AssignEmployee_OnlyWhenUnassigned(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)
	employeeID := seedEmployee(t, db, "alice@example.com")
	first := seedDepartment(t, db, "Engineering")
	second := seedDepartment(t, db, "Sales")

	require.NoError(t, repo.AssignEmployee(context.Background(), employeeID, first))

	err := repo.AssignEmployee(context.Background(), employeeID, second)
	require.ErrorIs(t, err, domain.ErrAlreadyInDepartment)

	require.NoError(t, repo.UnassignEmployee(context.Background(), employeeID))
	require.NoError(t, repo.AssignEmployee(context.Background(), employeeID, second))
}

func TestDepartmentRepository_AssignEmployee_UnknownEmployee(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)
	deptID := seedDepartment(t, db, "Engineering")

	err := repo.AssignEmployee(context.Background(), 42, deptID)
	require.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestDepartmentRepository_UnassignEmployee_NotInDepartment(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)
	employeeID := seedEmployee(t, db, "alice@example.com")

	err := repo.UnassignEmployee(context.Background(), employeeID)
	require.ErrorIs(t, err, domain.ErrNotInDepartment)
}

func TestDepartmentRepository_EmployeesAndUnassigned(t *testing.T) {
	db := newTestDB(t)
	repo := NewDepartmentRepository(db)
	inside := seedEmployee(t, db, "alice@example.com")
	outside := seedEmployee(t, db, "bruno@example.com")
	deptID := seedDepartment(t, db, "Engineering")

	require.NoError(t, repo.AssignEmployee(context.Background(), inside, deptID))

	members, err := repo.Employees(context.Background(), deptID)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, inside, members[0].ID)
	assert.Equal(t, "Engineering", members[0].Department)

	unassigned, err := repo.Unassigned(context.Background())
	require.NoError(t, err)
	require.Len(t, unassigned, 1)
	assert.Equal(t, outside, unassigned[0].ID)
}
