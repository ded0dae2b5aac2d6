package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/auth"
	"therapycare/internal/model"
	"therapycare/internal/service"
)

// AppointmentHandler serves the owner-scoped appointment ledger endpoints.
type AppointmentHandler struct {
	appointmentService service.AppointmentService
}

// NewAppointmentHandler creates a new appointment handler.
func NewAppointmentHandler(appointmentService service.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{appointmentService: appointmentService}
}

// CreateAppointmentRequest represents a new appointment. The patient name is
// denormalized as given rather than joined at read time.
type CreateAppointmentRequest struct {
	PatientID   string `json:"patient_id" validate:"required"`
	PatientName string `json:"patient_name" validate:"required"`
	Date        string `json:"date" validate:"required,datetime=2006-01-02"`
	Time        string `json:"time" validate:"required"`
	Duration    int    `json:"duration"`
	Notes       string `json:"notes"`
}

// ListAppointments godoc
// @Summary List own appointments
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Appointment
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments [get]
func (h *AppointmentHandler) ListAppointments(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	appointments, err := h.appointmentService.List(c.Request().Context(), practitioner.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, appointments)
}

// CreateAppointment godoc
// @Summary Create an appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateAppointmentRequest true "Appointment data"
// @Success 201 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments [post]
func (h *AppointmentHandler) CreateAppointment(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	var req CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	appointment, err := h.appointmentService.Create(c.Request().Context(), practitioner.ID, service.AppointmentInput{
		PatientID:   req.PatientID,
		PatientName: req.PatientName,
		Date:        req.Date,
		Time:        req.Time,
		Duration:    req.Duration,
		Notes:       req.Notes,
	})
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, appointment)
}

// UpdateAppointment godoc
// @Summary Update an owned appointment
// @Tags appointments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Param request body model.AppointmentUpdate true "Partial update; absent fields are left unchanged"
// @Success 200 {object} model.Appointment
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/{id} [put]
func (h *AppointmentHandler) UpdateAppointment(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	var update model.AppointmentUpdate
	if err := c.Bind(&update); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	appointment, err := h.appointmentService.Update(c.Request().Context(), c.Param("id"), practitioner.ID, &update)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, appointment)
}

// DeleteAppointment godoc
// @Summary Delete an owned appointment
// @Tags appointments
// @Produce json
// @Security BearerAuth
// @Param id path string true "Appointment id"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /appointments/{id} [delete]
func (h *AppointmentHandler) DeleteAppointment(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	if err := h.appointmentService.Delete(c.Request().Context(), c.Param("id"), practitioner.ID); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "appointment deleted"})
}
