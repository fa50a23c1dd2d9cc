package ports

import (
	"context"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// ReportKind selects which aggregate query feeds the text-report writer.
type ReportKind string

const (
	ReportDepartment ReportKind = "department"
	ReportProject    ReportKind = "project"
	ReportTotal      ReportKind = "total"
)

// ParseReportKind validates a raw report kind.
func ParseReportKind(s string) (ReportKind, error) {
	switch ReportKind(s) {
	case ReportDepartment, ReportProject, ReportTotal:
		return ReportKind(s), nil
	}
	return "", domain.ErrUnknownReportKind
}

// GenerateReportResult describes a written report file.
type GenerateReportResult struct {
	Path string
	Rows int
}

// ReportService runs aggregate queries and writes plain-text report files.
// Only HR admins may generate reports.
type ReportService interface {
	Data(ctx context.Context, actor domain.Identity, kind ReportKind) (*ReportData, error)
	Generate(ctx context.Context, actor domain.Identity, kind ReportKind) (*GenerateReportResult, error)
}
