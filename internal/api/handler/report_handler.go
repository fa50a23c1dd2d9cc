package handler

import (
	"errors"
	"io/fs"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/api/metrics"
	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// ReportHandler handles HTTP requests for plain-text report generation.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

type reportDataResponse struct {
	Columns []string            `json:"columns"`
	Rows    []map[string]string `json:"rows"`
}

type generateReportResponse struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

// Data handles GET /v1/reports/:kind: the aggregate rows as JSON, without
// writing a file.
//
// @Summary      Preview report data
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Report kind: department, project or total"
// @Success      200   {object}  reportDataResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/reports/{kind} [get]
func (h *ReportHandler) Data(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	kind, err := ports.ParseReportKind(c.Param("kind"))
	if err != nil {
		return err
	}

	data, err := h.service.Data(c.Request().Context(), actor, kind)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reportDataResponse{Columns: data.Columns, Rows: data.Rows})
}

// Generate handles POST /v1/reports/:kind: runs the aggregate query and
// writes the timestamped text file.
//
// @Summary      Generate a plain-text report file
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        kind  path      string  true  "Report kind: department, project or total"
// @Success      201   {object}  generateReportResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/reports/{kind} [post]
func (h *ReportHandler) Generate(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	kind, err := ports.ParseReportKind(c.Param("kind"))
	if err != nil {
		return err
	}

	result, err := h.service.Generate(c.Request().Context(), actor, kind)
	if err != nil {
		if reason, ok := reportErrorReason(err); ok {
			metrics.ReportErrorsTotal.WithLabelValues(reason).Inc()
		}
		return err
	}
	metrics.ReportsGeneratedTotal.WithLabelValues(string(kind)).Inc()

	return c.JSON(http.StatusCreated, generateReportResponse{Path: result.Path, Rows: result.Rows})
}

// reportErrorReason classifies a failed generation for the error counter.
// Authorization failures are not counted as generation errors.
func reportErrorReason(err error) (string, bool) {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, domain.ErrForbidden):
		return "", false
	case errors.Is(err, domain.ErrEmptyReport):
		return "empty", true
	case errors.As(err, &pathErr):
		return "io", true
	default:
		return "query", true
	}
}
