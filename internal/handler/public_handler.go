package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/repository"
	"therapycare/internal/service"
)

// PublicHandler serves the unauthenticated directory endpoints.
type PublicHandler struct {
	practitionerService service.PractitionerService
}

// NewPublicHandler creates a new public directory handler.
func NewPublicHandler(practitionerService service.PractitionerService) *PublicHandler {
	return &PublicHandler{practitionerService: practitionerService}
}

// SearchPractitioners godoc
// @Summary Search practitioners
// @Tags public
// @Produce json
// @Param specialty query string false "Case-insensitive substring match"
// @Param city query string false "Case-insensitive substring match"
// @Param category query string false "Exact category slug"
// @Param sort_by query string false "rating | reviews | name" default(rating)
// @Success 200 {array} model.PractitionerPublic
// @Failure 500 {object} errors.ErrorResponse
// @Router /public/practitioners [get]
func (h *PublicHandler) SearchPractitioners(c echo.Context) error {
	filter := repository.SearchFilter{
		Specialty: c.QueryParam("specialty"),
		City:      c.QueryParam("city"),
		Category:  c.QueryParam("category"),
		SortBy:    c.QueryParam("sort_by"),
	}

	results, err := h.practitionerService.Search(c.Request().Context(), filter)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, results)
}

// GetPractitioner godoc
// @Summary Get a practitioner's public profile
// @Tags public
// @Produce json
// @Param id path string true "Practitioner id"
// @Success 200 {object} model.PractitionerPublic
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /public/practitioner/{id} [get]
func (h *PublicHandler) GetPractitioner(c echo.Context) error {
	profile, err := h.practitionerService.GetPublic(c.Request().Context(), c.Param("id"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, profile)
}
