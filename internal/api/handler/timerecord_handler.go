package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/hrsuite/hr-system/internal/api/metrics"
	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// TimeRecordHandler handles HTTP requests for work-hour recording. Every
// route operates on the authenticated employee's own records.
type TimeRecordHandler struct {
	service ports.TimeRecordService
}

func NewTimeRecordHandler(service ports.TimeRecordService) *TimeRecordHandler {
	return &TimeRecordHandler{service: service}
}

// Hours arrives as a string ("7.5") so the exact decimal value survives the
// JSON round-trip.
type recordTimeRequest struct {
	Date        string `json:"date"        validate:"required"`
	Hours       string `json:"hours"       validate:"required"`
	Description string `json:"description" validate:"required"`
	ProjectID   *int64 `json:"project_id,omitempty"`
}

type recordTimeResponse struct {
	Record  *domain.TimeRecord `json:"record"`
	Message string             `json:"message"`
	Warning string             `json:"warning,omitempty"`
}

type listTimeRecordsResponse struct {
	Data []domain.TimeRecord `json:"data"`
}

type validateHoursResponse struct {
	Valid    bool   `json:"valid"`
	Existing string `json:"existing"`
	Total    string `json:"total"`
	Cap      string `json:"cap"`
}

// Create handles POST /v1/time-records.
//
// @Summary      Record worked hours
// @Tags         time-records
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      recordTimeRequest  true  "Date, hours, description and optional project"
// @Success      201   {object}  recordTimeResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/time-records [post]
func (h *TimeRecordHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req recordTimeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	date, err := time.Parse(domain.DateFormat, req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	hours, err := decimal.NewFromString(req.Hours)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "hours must be a decimal number")
	}

	result, err := h.service.RecordTime(c.Request().Context(), actor, ports.RecordTimeInput{
		Date:        date,
		Hours:       hours,
		Description: req.Description,
		ProjectID:   req.ProjectID,
	})
	if err != nil {
		metrics.TimeRecordRejectionsTotal.WithLabelValues(rejectionReason(err)).Inc()
		return err
	}

	hasProject := "false"
	if result.Record.ProjectID != nil {
		hasProject = "true"
	}
	metrics.TimeRecordsCreatedTotal.WithLabelValues(hasProject).Inc()

	return c.JSON(http.StatusCreated, recordTimeResponse{
		Record:  result.Record,
		Message: result.Message,
		Warning: result.Warning,
	})
}

// List handles GET /v1/time-records: the caller's own records, newest first.
//
// @Summary      List the caller's time records
// @Tags         time-records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listTimeRecordsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/time-records [get]
func (h *TimeRecordHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	records, err := h.service.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listTimeRecordsResponse{Data: records})
}

// Validate handles GET /v1/time-records/validate?date=...&hours=...: a
// read-only daily-cap preview that never persists anything.
//
// @Summary      Check prospective hours against the daily cap
// @Tags         time-records
// @Produce      json
// @Security     BearerAuth
// @Param        date   query     string  true  "Date (YYYY-MM-DD)"
// @Param        hours  query     string  true  "Hours to add"
// @Success      200    {object}  validateHoursResponse
// @Failure      400    {object}  map[string]string
// @Router       /v1/time-records/validate [get]
func (h *TimeRecordHandler) Validate(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	date, err := time.Parse(domain.DateFormat, c.QueryParam("date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be YYYY-MM-DD")
	}
	hours, err := decimal.NewFromString(c.QueryParam("hours"))
	if err != nil || hours.Sign() <= 0 {
		return echo.NewHTTPError(http.StatusBadRequest, "hours must be a positive decimal number")
	}

	check, err := h.service.ValidateDailyHours(c.Request().Context(), actor.EmployeeID, date, hours)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, validateHoursResponse{
		Valid:    check.Valid,
		Existing: check.Existing.String(),
		Total:    check.Total.String(),
		Cap:      domain.DailyHoursCap.String(),
	})
}

func rejectionReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrDailyCapExceeded):
		return "daily_cap"
	case errors.Is(err, domain.ErrBeforeContractDate):
		return "before_contract"
	case errors.Is(err, domain.ErrDuplicateSubmission):
		return "duplicate"
	default:
		return "invalid"
	}
}
