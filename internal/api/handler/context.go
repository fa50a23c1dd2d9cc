package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// performs a fast-fail check before any service call:
//   - employee_id must be present (presence proves the middleware ran).
//   - role must parse to a known role; an unknown role in a structurally
//     valid JWT makes the token operationally unusable — reject with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := c.Get("employee_id").(int64)
	if !ok || id <= 0 {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	raw, _ := c.Get("role").(string)
	role, err := domain.ParseRole(raw)
	if err != nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token carries an unknown role")
	}

	return domain.Identity{EmployeeID: id, Role: role}, nil
}

// parseIDParam reads a positive integer path parameter.
func parseIDParam(c echo.Context, name string) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).Int64(name, &id).BindError(); err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
