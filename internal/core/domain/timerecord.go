package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyHoursCap is the maximum number of hours an employee may record on a
// single calendar date. The boundary is inclusive: exactly 12.0 is valid.
var DailyHoursCap = decimal.NewFromInt(12)

// TimeRecord is a single work-hours entry. Records are append-only: there is
// no edit or delete operation.
type TimeRecord struct {
	ID          int64           `json:"id"`
	Date        time.Time       `json:"date"`
	Hours       decimal.Decimal `json:"hours"`
	Description string          `json:"description"`
	EmployeeID  int64           `json:"employee_id"`
	ProjectID   *int64          `json:"project_id,omitempty"`
	ProjectName string          `json:"project_name,omitempty"`
	Department  string          `json:"department,omitempty"`
}

// DailyHoursCheck is the result of validating a prospective entry against the
// cap: Existing is the sum already persisted for the employee/date, Total is
// Existing plus the new hours, and Valid is Total <= DailyHoursCap.
type DailyHoursCheck struct {
	Valid    bool
	Existing decimal.Decimal
	Total    decimal.Decimal
}
