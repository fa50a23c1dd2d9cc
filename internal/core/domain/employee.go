package domain

import "time"

// DateFormat is the calendar-date layout used everywhere a date has no
// time-of-day component (contract dates, time-record dates, project starts).
const DateFormat = "2006-01-02"

// Employee is a staff record. DepartmentID is nil until a manager assigns
// the employee to a department.
type Employee struct {
	ID           int64     `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Age          int       `json:"age"`
	Address      string    `json:"address"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ContractDate time.Time `json:"contract_date"`
	Salary       float64   `json:"salary"`
	Role         Role      `json:"role"`
	DepartmentID *int64    `json:"department_id,omitempty"`
	Department   string    `json:"department,omitempty"`
}

// FullName returns "First Last".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
