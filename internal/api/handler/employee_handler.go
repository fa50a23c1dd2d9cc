package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for employee record administration.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

type createEmployeeRequest struct {
	FirstName    string  `json:"first_name"    validate:"required"`
	LastName     string  `json:"last_name"     validate:"required"`
	Age          int     `json:"age"           validate:"required,gte=18,lte=100"`
	Address      string  `json:"address"       validate:"required,excludes=@"`
	Phone        string  `json:"phone"         validate:"required,len=9,numeric"`
	Email        string  `json:"email"         validate:"required,email"`
	ContractDate string  `json:"contract_date" validate:"required"`
	Salary       float64 `json:"salary"        validate:"required,gt=0"`
	Role         string  `json:"role"          validate:"required,oneof=hr_admin manager employee"`
}

type updateEmployeeRequest struct {
	FirstName string  `json:"first_name" validate:"required"`
	LastName  string  `json:"last_name"  validate:"required"`
	Age       int     `json:"age"        validate:"required,gte=18,lte=100"`
	Address   string  `json:"address"    validate:"required,excludes=@"`
	Phone     string  `json:"phone"      validate:"required,len=9,numeric"`
	Email     string  `json:"email"      validate:"required,email"`
	Salary    float64 `json:"salary"     validate:"required,gt=0"`
}

type listEmployeesResponse struct {
	Data []domain.Employee `json:"data"`
}

// Create handles POST /v1/employees.
//
// @Summary      Create an employee record
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEmployeeRequest  true  "Employee details"
// @Success      201   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contractDate, err := time.Parse(domain.DateFormat, req.ContractDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "contract_date must be YYYY-MM-DD")
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	employee, err := h.service.Create(c.Request().Context(), actor, ports.EmployeeInput{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Age:          req.Age,
		Address:      req.Address,
		Phone:        req.Phone,
		Email:        req.Email,
		ContractDate: contractDate,
		Salary:       req.Salary,
		Role:         role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, employee)
}

// Get handles GET /v1/employees/:id.
//
// @Summary      Get an employee by ID
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Employee ID"
// @Success      200  {object}  domain.Employee
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// List handles GET /v1/employees.
//
// @Summary      List all employees
// @Tags         employees
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listEmployeesResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	employees, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listEmployeesResponse{Data: employees})
}

// Update handles PUT /v1/employees/:id. Role and contract date are immutable
// and deliberately absent from the request schema.
//
// @Summary      Update an employee's mutable fields
// @Tags         employees
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Employee ID"
// @Param        body  body      updateEmployeeRequest  true  "Updated fields"
// @Success      200   {object}  domain.Employee
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /v1/employees/{id} [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.service.Update(c.Request().Context(), actor, id, ports.UpdateEmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Address:   req.Address,
		Phone:     req.Phone,
		Email:     req.Email,
		Salary:    req.Salary,
	}); err != nil {
		return err
	}

	employee, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, employee)
}

// Delete handles DELETE /v1/employees/:id.
//
// @Summary      Delete an employee record
// @Tags         employees
// @Security     BearerAuth
// @Param        id  path  int  true  "Employee ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
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
