package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// RecordTimeInput is the DTO passed from the transport layer when the
// authenticated employee logs worked hours.
type RecordTimeInput struct {
	Date        time.Time
	Hours       decimal.Decimal
	Description string
	ProjectID   *int64 // optional
}

// RecordTimeResult is returned on a successful RecordTime call.
type RecordTimeResult struct {
	Record *domain.TimeRecord
	// Message is the human-readable outcome; it includes the running daily
	// total ("existing+new/12") when prior hours existed on that date.
	Message string
	// Warning is set when the requested project was dropped because the
	// employee is not assigned to it.
	Warning string
}

// TimeRecordService orchestrates validation and persistence of time records.
type TimeRecordService interface {
	// ValidateDailyHours sums the hours already persisted for the employee
	// on the date and checks existing+newHours against the 12-hour cap.
	// Read-only; missing prior records count as zero.
	ValidateDailyHours(ctx context.Context, employeeID int64, date time.Time, newHours decimal.Decimal) (domain.DailyHoursCheck, error)

	// RecordTime runs the ordered checks (contract date, daily cap, project
	// assignment) and persists the entry for the acting employee.
	RecordTime(ctx context.Context, actor domain.Identity, in RecordTimeInput) (*RecordTimeResult, error)

	// ListMine returns the acting employee's records, newest first.
	ListMine(ctx context.Context, actor domain.Identity) ([]domain.TimeRecord, error)
}
