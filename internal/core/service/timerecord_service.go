package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// SubmissionGuard abstracts the duplicate-submission store (Redis). A
// submission is a duplicate when the same employee sent an identical
// date/hours/description tuple within the guard's TTL.
type SubmissionGuard interface {
	IsDuplicate(ctx context.Context, employeeID int64, date time.Time, hours decimal.Decimal, description string) (bool, error)
	Mark(ctx context.Context, employeeID int64, date time.Time, hours decimal.Decimal, description string) error
}

type timeRecordService struct {
	records   ports.TimeRecordRepository
	employees ports.EmployeeRepository
	projects  ports.ProjectRepository
	guard     SubmissionGuard
	log       zerolog.Logger
}

// NewTimeRecordService returns a TimeRecordService implementation.
func NewTimeRecordService(
	records ports.TimeRecordRepository,
	employees ports.EmployeeRepository,
	projects ports.ProjectRepository,
	guard SubmissionGuard,
	log zerolog.Logger,
) ports.TimeRecordService {
	return &timeRecordService{
		records:   records,
		employees: employees,
		projects:  projects,
		guard:     guard,
		log:       log,
	}
}

// ValidateDailyHours sums the hours already persisted for the employee on the
// date and checks existing+newHours against the cap. Read-only: repeated
// calls with unchanged stored data return identical results.
func (s *timeRecordService) ValidateDailyHours(ctx context.Context, employeeID int64, date time.Time, newHours decimal.Decimal) (domain.DailyHoursCheck, error) {
	existing, err := s.records.HoursOn(ctx, employeeID, date)
	if err != nil {
		return domain.DailyHoursCheck{}, fmt.Errorf("daily hours lookup: %w", err)
	}

	total := existing.Add(newHours)
	return domain.DailyHoursCheck{
		Valid:    total.LessThanOrEqual(domain.DailyHoursCap),
		Existing: existing,
		Total:    total,
	}, nil
}

// RecordTime validates and persists a work-hours entry for the acting
// employee. Checks run in order and short-circuit on the first failure;
// nothing is persisted on any failure path.
func (s *timeRecordService) RecordTime(ctx context.Context, actor domain.Identity, in ports.RecordTimeInput) (*ports.RecordTimeResult, error) {
	if in.Hours.Sign() <= 0 || in.Description == "" {
		return nil, domain.ErrInvalidTimeRecord
	}
	date := midnightUTC(in.Date)

	// 1. Duplicate-submission guard — guard errors are non-fatal.
	isDup, err := s.guard.IsDuplicate(ctx, actor.EmployeeID, date, in.Hours, in.Description)
	if err != nil {
		s.log.Warn().Err(err).Int64("employee_id", actor.EmployeeID).Msg("submission guard check failed, processing anyway")
	} else if isDup {
		return nil, domain.ErrDuplicateSubmission
	}

	// 2. The record date must not precede the employee's contract date.
	employee, err := s.employees.GetByID(ctx, actor.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("record time: %w", err)
	}
	if date.Before(midnightUTC(employee.ContractDate)) {
		return nil, fmt.Errorf("%w: cannot record hours before your contract date (%s)",
			domain.ErrBeforeContractDate, employee.ContractDate.Format(domain.DateFormat))
	}

	// 3. Daily-hours cap, inclusive at exactly 12.0.
	check, err := s.ValidateDailyHours(ctx, actor.EmployeeID, date, in.Hours)
	if err != nil {
		return nil, fmt.Errorf("record time: %w", err)
	}
	if !check.Valid {
		return nil, fmt.Errorf("%w: %s hours already recorded for %s; adding %s would total %s, the daily maximum is 12 hours",
			domain.ErrDailyCapExceeded,
			check.Existing.StringFixed(2),
			date.Format(domain.DateFormat),
			in.Hours.StringFixed(2),
			check.Total.StringFixed(2))
	}

	// 4. Unassigned project downgrades to "no project" with a warning, not
	// a hard failure.
	warning := ""
	projectID := in.ProjectID
	if projectID != nil {
		assigned, err := s.projects.IsAssigned(ctx, actor.EmployeeID, *projectID)
		if err != nil {
			return nil, fmt.Errorf("record time: project assignment check: %w", err)
		}
		if !assigned {
			warning = "you are not assigned to this project; time recorded without project"
			projectID = nil
		}
	}

	record := &domain.TimeRecord{
		Date:        date,
		Hours:       in.Hours,
		Description: in.Description,
		EmployeeID:  actor.EmployeeID,
		ProjectID:   projectID,
	}
	id, err := s.records.Insert(ctx, record)
	if err != nil {
		s.log.Error().Err(err).Int64("employee_id", actor.EmployeeID).Msg("failed to insert time record")
		return nil, err
	}
	record.ID = id

	// 5. Mark only after the insert succeeded: a guard key set for a failed
	// write would reject a legitimate retry for the whole TTL. Races between
	// identical submissions are still bounded by the transactional cap
	// re-check in the store.
	if markErr := s.guard.Mark(ctx, actor.EmployeeID, date, in.Hours, in.Description); markErr != nil {
		s.log.Warn().Err(markErr).Int64("employee_id", actor.EmployeeID).Msg("failed to set submission guard key")
	}

	message := "time recorded successfully"
	if check.Existing.Sign() > 0 {
		message += fmt.Sprintf("; total for %s: %s/12", date.Format(domain.DateFormat), check.Total.StringFixed(2))
	}

	s.log.Info().
		Int64("employee_id", actor.EmployeeID).
		Str("date", date.Format(domain.DateFormat)).
		Str("hours", in.Hours.String()).
		Msg("time recorded")

	return &ports.RecordTimeResult{Record: record, Message: message, Warning: warning}, nil
}

func (s *timeRecordService) ListMine(ctx context.Context, actor domain.Identity) ([]domain.TimeRecord, error) {
	return s.records.ListByEmployee(ctx, actor.EmployeeID)
}

// midnightUTC strips any time-of-day component.
func midnightUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
