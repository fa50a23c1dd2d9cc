package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hrsuite/hr-system/internal/core/ports"
)

// AdminHandler exposes runtime administration state. Routes are mounted
// behind the hr_admin RBAC group.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

type registrationState struct {
	Enabled bool `json:"enabled"`
}

// GetRegistration reports whether public credential registration is open.
//
// @Summary      Get the public-registration toggle
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  registrationState
// @Failure      403  {object}  map[string]string
// @Router       /v1/admin/registration [get]
func (h *AdminHandler) GetRegistration(c echo.Context) error {
	return c.JSON(http.StatusOK, registrationState{Enabled: h.admin.RegistrationEnabled()})
}

// SetRegistration flips the public-registration toggle.
//
// @Summary      Set the public-registration toggle
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      registrationState  true  "Desired state"
// @Success      200   {object}  registrationState
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /v1/admin/registration [put]
func (h *AdminHandler) SetRegistration(c echo.Context) error {
	var req registrationState
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.admin.SetRegistrationEnabled(req.Enabled)
	return c.JSON(http.StatusOK, registrationState{Enabled: h.admin.RegistrationEnabled()})
}
