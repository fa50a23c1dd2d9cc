package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

func TestProjectRepository_CreateGetUpdate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	id, err := repo.Create(context.Background(), &domain.Project{
		Name:        "Apollo",
		Description: "Payroll migration",
		StartDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	p, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Apollo", p.Name)
	assert.Equal(t, "Payroll migration", p.Description)
	assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), p.StartDate)

	p.Name = "Apollo 2"
	p.StartDate = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Update(context.Background(), p))

	p, err = repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "Apollo 2", p.Name)
	assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), p.StartDate)
}

func TestProjectRepository_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)

	_, err := repo.GetByID(context.Background(), 42)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
	require.ErrorIs(t, repo.Update(context.Background(), &domain.Project{ID: 42, Name: "X"}), domain.ErrProjectNotFound)
	require.ErrorIs(t, repo.Delete(context.Background(), 42), domain.ErrProjectNotFound)
}

func TestProjectRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	id := seedProject(t, db, "Apollo")

	require.NoError(t, repo.Delete(context.Background(), id))
	_, err := repo.GetByID(context.Background(), id)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestProjectRepository_Assign_Duplicate(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	employeeID := seedEmployee(t, db, "alice@example.com")
	projectID := seedProject(t, db, "Apollo")
	on := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Assign(context.Background(), employeeID, projectID, on)
	require.NoError(t, err)

	_, err = repo.Assign(context.Background(), employeeID, projectID, on)
	require.ErrorIs(t, err, domain.ErrAlreadyAssigned)
}

func TestProjectRepository_Unassign(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	employeeID := seedEmployee(t, db, "alice@example.com")
	projectID := seedProject(t, db, "Apollo")

	err := repo.Unassign(context.Background(), employeeID, projectID)
	require.ErrorIs(t, err, domain.ErrAssignmentNotFound)

	_, err = repo.Assign(context.Background(), employeeID, projectID, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NoError(t, repo.Unassign(context.Background(), employeeID, projectID))

	assigned, err := repo.IsAssigned(context.Background(), employeeID, projectID)
	require.NoError(t, err)
	assert.False(t, assigned)
}

func TestProjectRepository_AssignmentsJoinNames(t *testing.T) {
	db := newTestDB(t)
	repo := NewProjectRepository(db)
	alice := seedEmployee(t, db, "alice@example.com")
	bruno := seedEmployee(t, db, "bruno@example.com")
	apollo := seedProject(t, db, "Apollo")
	borealis := seedProject(t, db, "Borealis")
	on := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_, err := repo.Assign(context.Background(), alice, borealis, on)
	require.NoError(t, err)
	_, err = repo.Assign(context.Background(), bruno, apollo, on)
	require.NoError(t, err)

	all, err := repo.Assignments(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 2)
	// Ordered by project name.
	assert.Equal(t, "Apollo", all[0].ProjectName)
	assert.Equal(t, bruno, all[0].EmployeeID)
	assert.Equal(t, "Alice Reyes", all[0].EmployeeName)
	assert.Equal(t, "Borealis", all[1].ProjectName)
	assert.Equal(t, on, all[1].AssignedOn)

	mine, err := repo.ProjectsOf(context.Background(), alice)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Borealis", mine[0].ProjectName)

	assigned, err := repo.IsAssigned(context.Background(), alice, borealis)
	require.NoError(t, err)
	assert.True(t, assigned)
}
