package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/auth"
	"therapycare/internal/model"
	"therapycare/internal/service"
)

// ProfileHandler serves the authenticated practitioner's own profile.
type ProfileHandler struct {
	practitionerService service.PractitionerService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(practitionerService service.PractitionerService) *ProfileHandler {
	return &ProfileHandler{practitionerService: practitionerService}
}

// GetProfile godoc
// @Summary Get own profile
// @Tags practitioner
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.Practitioner
// @Failure 401 {object} errors.ErrorResponse
// @Router /practitioner/profile [get]
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	// The guard already fetched the record; no further store access.
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, practitioner)
}

// UpdateProfile godoc
// @Summary Update own profile
// @Tags practitioner
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.PractitionerUpdate true "Partial profile update; absent fields are left unchanged"
// @Success 200 {object} model.Practitioner
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /practitioner/profile [put]
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	var update model.PractitionerUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	updated, err := h.practitionerService.UpdateProfile(c.Request().Context(), practitioner.ID, &update)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, updated)
}
