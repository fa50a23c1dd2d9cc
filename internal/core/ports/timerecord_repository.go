package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// TimeRecordRepository defines persistence operations for work-hour entries.
type TimeRecordRepository interface {
	// Insert persists a new record. The daily sum for the employee/date is
	// re-checked inside the same transaction as the insert; when the new
	// total would exceed the cap the insert is rolled back and
	// domain.ErrDailyCapExceeded is returned. This closes the race between
	// two concurrent submissions that both passed validation.
	Insert(ctx context.Context, r *domain.TimeRecord) (int64, error)

	// HoursOn returns the sum of hours persisted for the employee on the
	// given calendar date, zero when there are none.
	HoursOn(ctx context.Context, employeeID int64, date time.Time) (decimal.Decimal, error)

	// ListByEmployee returns the employee's records newest-first, with
	// project and department names joined in.
	ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeRecord, error)
}
