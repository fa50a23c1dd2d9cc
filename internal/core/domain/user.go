package domain

import "time"

// User is a credential row tied to exactly one employee. The role lives on
// the employee record; the user only carries the password hash.
type User struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the authenticated caller passed into every service operation
// that needs authorization. It replaces any ambient session state.
type Identity struct {
	EmployeeID int64 `json:"employee_id"`
	Role       Role  `json:"role"`
}
