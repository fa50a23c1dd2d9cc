package ports

import "context"

// ReportData is an ordered tabular result: Columns fixes the column order,
// each row maps column name to its rendered value. An empty Rows slice means
// no data, not an error.
type ReportData struct {
	Columns []string
	Rows    []map[string]string
}

// ReportRepository runs the read-only aggregate queries that feed reports.
type ReportRepository interface {
	EmployeesByDepartment(ctx context.Context) (*ReportData, error)
	EmployeesByProject(ctx context.Context) (*ReportData, error)
	AllEmployees(ctx context.Context) (*ReportData, error)
}
