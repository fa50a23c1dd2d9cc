package sqlite

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Connect(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedEmployee(t *testing.T, db *sql.DB, email string) int64 {
	t.Helper()
	id, err := NewEmployeeRepository(db).Create(context.Background(), &domain.Employee{
		FirstName:    "Alice",
		LastName:     "Reyes",
		Age:          30,
		Address:      "1 Main St",
		Phone:        "555-0100",
		Email:        email,
		ContractDate: time.Date(2023, 1, 15, 0, 0, 0, 0, time.UTC),
		Salary:       60000,
		Role:         domain.RoleEmployee,
	})
	require.NoError(t, err)
	return id
}

func seedProject(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	id, err := NewProjectRepository(db).Create(context.Background(), &domain.Project{
		Name:        name,
		Description: "test project",
		StartDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	return id
}

func seedDepartment(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()
	id, err := NewDepartmentRepository(db).Create(context.Background(), name)
	require.NoError(t, err)
	return id
}
