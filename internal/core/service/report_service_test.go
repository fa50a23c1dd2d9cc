package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

type stubReportRepo struct {
	byDepartment *ports.ReportData
	byProject    *ports.ReportData
	all          *ports.ReportData
}

func (r *stubReportRepo) EmployeesByDepartment(_ context.Context) (*ports.ReportData, error) {
	return r.byDepartment, nil
}

func (r *stubReportRepo) EmployeesByProject(_ context.Context) (*ports.ReportData, error) {
	return r.byProject, nil
}

func (r *stubReportRepo) AllEmployees(_ context.Context) (*ports.ReportData, error) {
	return r.all, nil
}

func reportData(rows int) *ports.ReportData {
	data := &ports.ReportData{Columns: []string{"Employee", "Email"}}
	for i := 0; i < rows; i++ {
		data.Rows = append(data.Rows, map[string]string{
			"Employee": "Person " + string(rune('A'+i)),
			"Email":    "p@example.com",
		})
	}
	return data
}

func TestReportService_Generate_Success(t *testing.T) {
	dir := t.TempDir()
	repo := &stubReportRepo{byDepartment: reportData(3)}
	svc := NewReportService(repo, dir, zerolog.Nop())

	result, err := svc.Generate(context.Background(), hrAdmin(), ports.ReportDepartment)
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}
	if result.Rows != 3 {
		t.Fatalf("expected 3 rows, got %d", result.Rows)
	}
	if _, err := os.Stat(result.Path); err != nil {
		t.Fatalf("report file missing: %v", err)
	}
	if filepath.Dir(result.Path) != dir {
		t.Fatalf("report written outside the configured directory: %s", result.Path)
	}
}

func TestReportService_Generate_EmptyData(t *testing.T) {
	dir := t.TempDir()
	repo := &stubReportRepo{all: reportData(0)}
	svc := NewReportService(repo, dir, zerolog.Nop())

	_, err := svc.Generate(context.Background(), hrAdmin(), ports.ReportTotal)
	if !errors.Is(err, domain.ErrEmptyReport) {
		t.Fatalf("expected ErrEmptyReport, got %v", err)
	}

	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("an empty report must create no file, found %d entries", len(entries))
	}
}

func TestReportService_Generate_Forbidden(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, t.TempDir(), zerolog.Nop())

	for _, role := range []domain.Role{domain.RoleManager, domain.RoleEmployee} {
		actor := domain.Identity{EmployeeID: 2, Role: role}
		if _, err := svc.Generate(context.Background(), actor, ports.ReportDepartment); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("role %s: expected ErrForbidden, got %v", role, err)
		}
	}
}

func TestReportService_Data_UnknownKind(t *testing.T) {
	svc := NewReportService(&stubReportRepo{}, t.TempDir(), zerolog.Nop())

	if _, err := svc.Data(context.Background(), hrAdmin(), ports.ReportKind("payroll")); !errors.Is(err, domain.ErrUnknownReportKind) {
		t.Fatalf("expected ErrUnknownReportKind, got %v", err)
	}
}

func TestReportService_Data_SelectsQueryByKind(t *testing.T) {
	repo := &stubReportRepo{
		byDepartment: reportData(1),
		byProject:    reportData(2),
		all:          reportData(3),
	}
	svc := NewReportService(repo, t.TempDir(), zerolog.Nop())

	cases := []struct {
		kind ports.ReportKind
		rows int
	}{
		{ports.ReportDepartment, 1},
		{ports.ReportProject, 2},
		{ports.ReportTotal, 3},
	}
	for _, tc := range cases {
		data, err := svc.Data(context.Background(), hrAdmin(), tc.kind)
		if err != nil {
			t.Fatalf("Data(%s) returned error: %v", tc.kind, err)
		}
		if len(data.Rows) != tc.rows {
			t.Fatalf("Data(%s): expected %d rows, got %d", tc.kind, tc.rows, len(data.Rows))
		}
	}
}
