package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/taxonomy"
)

// TaxonomyHandler serves the static category/specialty reference data.
type TaxonomyHandler struct{}

// NewTaxonomyHandler creates a new taxonomy handler.
func NewTaxonomyHandler() *TaxonomyHandler {
	return &TaxonomyHandler{}
}

// ListCategories godoc
// @Summary List categories
// @Tags taxonomy
// @Produce json
// @Success 200 {array} taxonomy.CategorySummary
// @Router /categories [get]
func (h *TaxonomyHandler) ListCategories(c echo.Context) error {
	return c.JSON(http.StatusOK, taxonomy.Categories())
}

// GetCategory godoc
// @Summary Get a category by slug
// @Tags taxonomy
// @Produce json
// @Param slug path string true "Category slug"
// @Success 200 {object} taxonomy.Category
// @Failure 404 {object} errors.ErrorResponse
// @Router /categories/{slug} [get]
func (h *TaxonomyHandler) GetCategory(c echo.Context) error {
	category, ok := taxonomy.CategoryBySlug(c.Param("slug"))
	if !ok {
		return httpError(apperrors.ErrNotFound)
	}
	return c.JSON(http.StatusOK, category)
}

// ListSpecialties godoc
// @Summary List specialties
// @Tags taxonomy
// @Produce json
// @Success 200 {array} taxonomy.Specialty
// @Router /specialties [get]
func (h *TaxonomyHandler) ListSpecialties(c echo.Context) error {
	return c.JSON(http.StatusOK, taxonomy.Specialties())
}

// GetSpecialty godoc
// @Summary Get a specialty by name
// @Tags taxonomy
// @Produce json
// @Param name path string true "Specialty display name"
// @Success 200 {object} taxonomy.Specialty
// @Failure 404 {object} errors.ErrorResponse
// @Router /specialties/{name} [get]
func (h *TaxonomyHandler) GetSpecialty(c echo.Context) error {
	specialty, ok := taxonomy.SpecialtyByName(c.Param("name"))
	if !ok {
		return httpError(apperrors.ErrNotFound)
	}
	return c.JSON(http.StatusOK, specialty)
}
