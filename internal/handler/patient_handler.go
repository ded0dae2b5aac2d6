package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/auth"
	"therapycare/internal/model"
	"therapycare/internal/service"
)

// PatientHandler serves the owner-scoped patient roster endpoints.
type PatientHandler struct {
	patientService service.PatientService
}

// NewPatientHandler creates a new patient handler.
func NewPatientHandler(patientService service.PatientService) *PatientHandler {
	return &PatientHandler{patientService: patientService}
}

// CreatePatientRequest represents a new patient record.
type CreatePatientRequest struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Phone    string `json:"phone" validate:"required"`
	Notes    string `json:"notes"`
}

// ListPatients godoc
// @Summary List own patients
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Patient
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients [get]
func (h *PatientHandler) ListPatients(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	patients, err := h.patientService.List(c.Request().Context(), practitioner.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, patients)
}

// CreatePatient godoc
// @Summary Create a patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreatePatientRequest true "Patient data"
// @Success 201 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients [post]
func (h *PatientHandler) CreatePatient(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	var req CreatePatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.patientService.Create(c.Request().Context(), practitioner.ID, service.PatientInput{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Notes:    req.Notes,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, patient)
}

// UpdatePatient godoc
// @Summary Update an owned patient
// @Tags patients
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient id"
// @Param request body model.PatientUpdate true "Partial update; absent fields are left unchanged"
// @Success 200 {object} model.Patient
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/{id} [put]
func (h *PatientHandler) UpdatePatient(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	var update model.PatientUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patient, err := h.patientService.Update(c.Request().Context(), c.Param("id"), practitioner.ID, &update)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, patient)
}

// DeletePatient godoc
// @Summary Delete an owned patient
// @Tags patients
// @Produce json
// @Security BearerAuth
// @Param id path string true "Patient id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /patients/{id} [delete]
func (h *PatientHandler) DeletePatient(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.patientService.Delete(c.Request().Context(), c.Param("id"), practitioner.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "patient deleted"})
}
