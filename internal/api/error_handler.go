package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"

	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, "access forbidden"
	case errors.Is(err, domain.ErrRegistrationClosed):
		return http.StatusForbidden, "public registration is closed"
	case errors.Is(err, domain.ErrSelfDelete):
		return http.StatusForbidden, "cannot delete your own employee record"
	case errors.Is(err, domain.ErrDepartmentHasOwner):
		return http.StatusForbidden, "only the department's manager can delete it"

	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound),
		errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrProjectNotFound),
		errors.Is(err, domain.ErrAssignmentNotFound),
		errors.Is(err, domain.ErrTimeRecordNotFound):
		return http.StatusNotFound, err.Error()

	case errors.Is(err, domain.ErrUserExists),
		errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrAlreadyInDepartment),
		errors.Is(err, domain.ErrNotInDepartment),
		errors.Is(err, domain.ErrAlreadyAssigned),
		errors.Is(err, domain.ErrDuplicateSubmission):
		return http.StatusConflict, err.Error()

	case errors.Is(err, domain.ErrDailyCapExceeded),
		errors.Is(err, domain.ErrBeforeContractDate),
		errors.Is(err, domain.ErrInvalidTimeRecord),
		errors.Is(err, domain.ErrEmptyReport):
		return http.StatusUnprocessableEntity, err.Error()

	case errors.Is(err, domain.ErrUnknownRole),
		errors.Is(err, domain.ErrUnknownReportKind):
		return http.StatusBadRequest, err.Error()
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
