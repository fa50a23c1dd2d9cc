package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
	"github.com/hrsuite/hr-system/internal/report"
)

// ReportService runs the aggregate queries and writes plain-text report
// files into the configured output directory.
type ReportService struct {
	repo   ports.ReportRepository
	outDir string
	now    func() time.Time
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, outDir string, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, outDir: outDir, now: time.Now, logger: logger}
}

// Data runs the aggregate query selected by kind. Empty data yields an
// empty row set, not an error.
func (s *ReportService) Data(ctx context.Context, actor domain.Identity, kind ports.ReportKind) (*ports.ReportData, error) {
	if !actor.Role.CanGenerateReports() {
		return nil, domain.ErrForbidden
	}

	switch kind {
	case ports.ReportDepartment:
		return s.repo.EmployeesByDepartment(ctx)
	case ports.ReportProject:
		return s.repo.EmployeesByProject(ctx)
	case ports.ReportTotal:
		return s.repo.AllEmployees(ctx)
	}
	return nil, domain.ErrUnknownReportKind
}

// Generate runs the query and writes the report file. Generating from an
// empty row set fails and creates no file.
func (s *ReportService) Generate(ctx context.Context, actor domain.Identity, kind ports.ReportKind) (*ports.GenerateReportResult, error) {
	data, err := s.Data(ctx, actor, kind)
	if err != nil {
		return nil, err
	}
	if len(data.Rows) == 0 {
		return nil, domain.ErrEmptyReport
	}

	path, err := report.Write(s.outDir, kind, data, s.now())
	if err != nil {
		s.logger.Error().Err(err).Str("kind", string(kind)).Msg("failed to write report")
		return nil, err
	}

	s.logger.Info().Str("kind", string(kind)).Str("path", path).Int("rows", len(data.Rows)).Msg("report generated")
	return &ports.GenerateReportResult{Path: path, Rows: len(data.Rows)}, nil
}
