// Package sqlite provides the SQLite-backed implementations of the
// repository ports. The schema is migrated on Connect; every statement is
// parameterized.
package sqlite

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// Connect opens (or creates) the database at path, enables foreign keys and
// WAL mode, and applies the schema. Use ":memory:" for tests.
func Connect(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}

	// SQLite allows one writer at a time; a single pooled connection avoids
	// SQLITE_BUSY and keeps ":memory:" databases shared across the pool.
	db.SetMaxOpenConns(1)

	if err := migrate(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite migrate: %w", err)
	}
	return db, nil
}

func migrate(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS departments (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		name       TEXT NOT NULL,
		manager_id INTEGER REFERENCES employees(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS employees (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		first_name    TEXT NOT NULL,
		last_name     TEXT NOT NULL,
		age           INTEGER NOT NULL,
		address       TEXT NOT NULL,
		phone         TEXT NOT NULL,
		email         TEXT NOT NULL UNIQUE,
		contract_date TEXT NOT NULL,
		salary        REAL NOT NULL,
		role          TEXT NOT NULL,
		department_id INTEGER REFERENCES departments(id) ON DELETE SET NULL
	);

	CREATE TABLE IF NOT EXISTS users (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id   INTEGER NOT NULL UNIQUE REFERENCES employees(id) ON DELETE CASCADE,
		password_hash TEXT NOT NULL,
		created_at    TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS projects (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		name        TEXT NOT NULL,
		description TEXT NOT NULL,
		start_date  TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS project_assignments (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		project_id  INTEGER NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		assigned_on TEXT NOT NULL,
		UNIQUE(employee_id, project_id)
	);

	-- Append-only: no UPDATE or DELETE statements exist for this table.
	CREATE TABLE IF NOT EXISTS time_records (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		date        TEXT NOT NULL,
		hours       TEXT NOT NULL,
		description TEXT NOT NULL,
		employee_id INTEGER NOT NULL REFERENCES employees(id) ON DELETE CASCADE,
		project_id  INTEGER REFERENCES projects(id) ON DELETE SET NULL
	);

	-- Hot path: the daily-cap sum on every submission.
	CREATE INDEX IF NOT EXISTS idx_time_records_employee_date
		ON time_records(employee_id, date);
	CREATE INDEX IF NOT EXISTS idx_employees_department
		ON employees(department_id);
	CREATE INDEX IF NOT EXISTS idx_assignments_project
		ON project_assignments(project_id);
	`

	_, err := db.Exec(schema)
	return err
}
