package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// TimeRecordRepository implements ports.TimeRecordRepository on SQLite.
// Hours are stored as decimal strings and summed with exact arithmetic so
// accumulated fractional entries cannot drift across the cap boundary.
type TimeRecordRepository struct {
	db *sql.DB
}

func NewTimeRecordRepository(db *sql.DB) *TimeRecordRepository {
	return &TimeRecordRepository{db: db}
}

// Insert persists the record. The daily sum is re-checked inside the same
// transaction as the insert; two concurrent submissions that both passed
// service-level validation cannot jointly exceed the cap.
func (r *TimeRecordRepository) Insert(ctx context.Context, rec *domain.TimeRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("insert time record: begin: %w", err)
	}
	defer tx.Rollback()

	existing, err := sumHours(ctx, tx, rec.EmployeeID, rec.Date)
	if err != nil {
		return 0, fmt.Errorf("insert time record: %w", err)
	}
	if existing.Add(rec.Hours).GreaterThan(domain.DailyHoursCap) {
		return 0, domain.ErrDailyCapExceeded
	}

	var projectID any
	if rec.ProjectID != nil {
		projectID = *rec.ProjectID
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO time_records (date, hours, description, employee_id, project_id)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Date.Format(domain.DateFormat), rec.Hours.String(), rec.Description,
		rec.EmployeeID, projectID)
	if err != nil {
		return 0, fmt.Errorf("insert time record: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert time record: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("insert time record: commit: %w", err)
	}
	return id, nil
}

func (r *TimeRecordRepository) HoursOn(ctx context.Context, employeeID int64, date time.Time) (decimal.Decimal, error) {
	return sumHours(ctx, r.db, employeeID, date)
}

func (r *TimeRecordRepository) ListByEmployee(ctx context.Context, employeeID int64) ([]domain.TimeRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT rt.id, rt.date, rt.hours, rt.description, rt.employee_id, rt.project_id,
		        COALESCE(p.name, ''), COALESCE(d.name, '')
		 FROM time_records rt
		 LEFT JOIN projects p ON rt.project_id = p.id
		 LEFT JOIN employees e ON rt.employee_id = e.id
		 LEFT JOIN departments d ON e.department_id = d.id
		 WHERE rt.employee_id = ?
		 ORDER BY rt.date DESC, rt.id DESC`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list time records: %w", err)
	}
	defer rows.Close()

	var out []domain.TimeRecord
	for rows.Next() {
		var (
			rec       domain.TimeRecord
			date      string
			hours     string
			projectID sql.NullInt64
		)
		err := rows.Scan(&rec.ID, &date, &hours, &rec.Description, &rec.EmployeeID,
			&projectID, &rec.ProjectName, &rec.Department)
		if err != nil {
			return nil, fmt.Errorf("list time records: %w", err)
		}
		if rec.Date, err = time.Parse(domain.DateFormat, date); err != nil {
			return nil, fmt.Errorf("list time records: parse date: %w", err)
		}
		if rec.Hours, err = decimal.NewFromString(hours); err != nil {
			return nil, fmt.Errorf("list time records: parse hours: %w", err)
		}
		if projectID.Valid {
			rec.ProjectID = &projectID.Int64
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// querier covers *sql.DB and *sql.Tx so the daily sum runs either standalone
// or inside the insert transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func sumHours(ctx context.Context, q querier, employeeID int64, date time.Time) (decimal.Decimal, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT hours FROM time_records WHERE employee_id = ? AND date = ?`,
		employeeID, date.Format(domain.DateFormat))
	if err != nil {
		return decimal.Zero, fmt.Errorf("sum hours: %w", err)
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return decimal.Zero, fmt.Errorf("sum hours: %w", err)
		}
		h, err := decimal.NewFromString(raw)
		if err != nil {
			return decimal.Zero, fmt.Errorf("sum hours: parse: %w", err)
		}
		total = total.Add(h)
	}
	return total, rows.Err()
}
