package domain

import "time"

// Project is a unit of work employees can be assigned to and book time against.
type Project struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	StartDate   time.Time `json:"start_date"`
}

// ProjectAssignment links an employee to a project from AssignedOn onward.
type ProjectAssignment struct {
	ID           int64     `json:"id"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name,omitempty"`
	ProjectID    int64     `json:"project_id"`
	ProjectName  string    `json:"project_name,omitempty"`
	AssignedOn   time.Time `json:"assigned_on"`
}
