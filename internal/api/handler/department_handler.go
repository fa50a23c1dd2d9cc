package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// DepartmentHandler handles HTTP requests for department administration and
// department membership.
type DepartmentHandler struct {
	service ports.DepartmentService
}

func NewDepartmentHandler(service ports.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{service: service}
}

type departmentRequest struct {
	Name string `json:"name" validate:"required"`
}

type assignDepartmentRequest struct {
	EmployeeID int64 `json:"employee_id" validate:"required,gt=0"`
}

type listDepartmentsResponse struct {
	Data []domain.Department `json:"data"`
}

// Create handles POST /v1/departments.
//
// @Summary      Create a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      departmentRequest  true  "Department name"
// @Success      201   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/departments [post]
func (h *DepartmentHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	department, err := h.service.Create(c.Request().Context(), actor, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, department)
}

// Get handles GET /v1/departments/:id.
//
// @Summary      Get a department by ID
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  domain.Department
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/departments/{id} [get]
func (h *DepartmentHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	department, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// List handles GET /v1/departments.
//
// @Summary      List all departments
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listDepartmentsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/departments [get]
func (h *DepartmentHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	departments, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listDepartmentsResponse{Data: departments})
}

// Rename handles PUT /v1/departments/:id.
//
// @Summary      Rename a department
// @Tags         departments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                true  "Department ID"
// @Param        body  body      departmentRequest  true  "New name"
// @Success      200   {object}  domain.Department
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/departments/{id} [put]
func (h *DepartmentHandler) Rename(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req departmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Rename(c.Request().Context(), actor, id, req.Name); err != nil {
		return err
	}

	department, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, department)
}

// Delete handles DELETE /v1/departments/:id.
//
// @Summary      Delete a department
// @Tags         departments
// @Security     BearerAuth
// @Param        id  path  int  true  "Department ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/departments/{id} [delete]
func (h *DepartmentHandler) Delete(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignEmployee handles POST /v1/departments/:id/employees.
//
// @Summary      Assign an employee to a department
// @Tags         departments
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                      true  "Department ID"
// @Param        body  body  assignDepartmentRequest  true  "Employee to assign"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/departments/{id}/employees [post]
func (h *DepartmentHandler) AssignEmployee(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req assignDepartmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.AssignEmployee(c.Request().Context(), actor, req.EmployeeID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UnassignEmployee handles DELETE /v1/departments/employees/:employee_id.
//
// @Summary      Remove an employee from their department
// @Tags         departments
// @Security     BearerAuth
// @Param        employee_id  path  int  true  "Employee ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/departments/employees/{employee_id} [delete]
func (h *DepartmentHandler) UnassignEmployee(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	employeeID, err := parseIDParam(c, "employee_id")
	if err != nil {
		return err
	}

	if err := h.service.UnassignEmployee(c.Request().Context(), actor, employeeID); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Employees handles GET /v1/departments/:id/employees.
//
// @Summary      List a department's employees
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Department ID"
// @Success      200  {object}  listEmployeesResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/departments/{id}/employees [get]
func (h *DepartmentHandler) Employees(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	employees, err := h.service.Employees(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEmployeesResponse{Data: employees})
}

// Unassigned handles GET /v1/departments/unassigned.
//
// @Summary      List employees without a department
// @Tags         departments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listEmployeesResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/departments/unassigned [get]
func (h *DepartmentHandler) Unassigned(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	employees, err := h.service.Unassigned(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEmployeesResponse{Data: employees})
}
