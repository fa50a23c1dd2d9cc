package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/core/domain"
	"github.com/hrsuite/hr-system/internal/core/ports"
)

// ProjectHandler handles HTTP requests for project administration and
// project assignments.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

type projectRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description" validate:"required"`
	StartDate   string `json:"start_date"  validate:"required"`
}

type assignProjectRequest struct {
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	AssignedOn string `json:"assigned_on,omitempty"`
}

type listProjectsResponse struct {
	Data []domain.Project `json:"data"`
}

type listAssignmentsResponse struct {
	Data []domain.ProjectAssignment `json:"data"`
}

func (r projectRequest) toInput() (ports.ProjectInput, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return ports.ProjectInput{}, echo.NewHTTPError(http.StatusBadRequest, "start_date must be YYYY-MM-DD")
	}
	return ports.ProjectInput{
		Name:        r.Name,
		Description: r.Description,
		StartDate:   start,
	}, nil
}

// Create handles POST /v1/projects.
//
// @Summary      Create a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      projectRequest  true  "Project details"
// @Success      201   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	project, err := h.service.Create(c.Request().Context(), actor, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, project)
}

// Get handles GET /v1/projects/:id.
//
// @Summary      Get a project by ID
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Project ID"
// @Success      200  {object}  domain.Project
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// List handles GET /v1/projects.
//
// @Summary      List all projects
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listProjectsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	projects, err := h.service.List(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listProjectsResponse{Data: projects})
}

// Update handles PUT /v1/projects/:id.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int             true  "Project ID"
// @Param        body  body      projectRequest  true  "Updated details"
// @Success      200   {object}  domain.Project
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req projectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	in, err := req.toInput()
	if err != nil {
		return err
	}

	if err := h.service.Update(c.Request().Context(), actor, id, in); err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), actor, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, project)
}

// Delete handles DELETE /v1/projects/:id.
//
// @Summary      Delete a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id  path  int  true  "Project ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
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

// Assign handles POST /v1/projects/:id/assignments.
//
// @Summary      Assign an employee to a project
// @Tags         projects
// @Accept       json
// @Security     BearerAuth
// @Param        id    path  int                   true  "Project ID"
// @Param        body  body  assignProjectRequest  true  "Employee and optional start date"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      409  {object}  map[string]string
// @Router       /v1/projects/{id}/assignments [post]
func (h *ProjectHandler) Assign(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req assignProjectRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var on *time.Time
	if req.AssignedOn != "" {
		t, err := time.Parse(domain.DateFormat, req.AssignedOn)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "assigned_on must be YYYY-MM-DD")
		}
		on = &t
	}

	if err := h.service.Assign(c.Request().Context(), actor, req.EmployeeID, id, on); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Unassign handles DELETE /v1/projects/:id/assignments/:employee_id.
//
// @Summary      Remove an employee from a project
// @Tags         projects
// @Security     BearerAuth
// @Param        id           path  int  true  "Project ID"
// @Param        employee_id  path  int  true  "Employee ID"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/projects/{id}/assignments/{employee_id} [delete]
func (h *ProjectHandler) Unassign(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}
	employeeID, err := parseIDParam(c, "employee_id")
	if err != nil {
		return err
	}

	if err := h.service.Unassign(c.Request().Context(), actor, employeeID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Assignments handles GET /v1/projects/assignments.
//
// @Summary      List all project assignments
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAssignmentsResponse
// @Failure      403  {object}  map[string]string
// @Router       /v1/projects/assignments [get]
func (h *ProjectHandler) Assignments(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	assignments, err := h.service.Assignments(c.Request().Context(), actor)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAssignmentsResponse{Data: assignments})
}

// MyProjects handles GET /v1/me/projects: the caller's own assignments, open
// to any authenticated employee so they can pick a project when recording
// time.
//
// @Summary      List the caller's project assignments
// @Tags         projects
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listAssignmentsResponse
// @Failure      401  {object}  map[string]string
// @Router       /v1/me/projects [get]
func (h *ProjectHandler) MyProjects(c echo.Context) error {
	actor, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	assignments, err := h.service.ProjectsOf(c.Request().Context(), actor.EmployeeID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, listAssignmentsResponse{Data: assignments})
}
