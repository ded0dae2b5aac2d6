package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"therapycare/internal/auth"
	"therapycare/internal/service"
)

// StatsHandler serves the practitioner dashboard statistics.
type StatsHandler struct {
	statsService service.StatsService
}

// NewStatsHandler creates a new stats handler.
func NewStatsHandler(statsService service.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats godoc
// @Summary Get own dashboard statistics
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.StatsSummary
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /stats [get]
func (h *StatsHandler) GetStats(c echo.Context) error {
	practitioner, err := auth.CurrentPractitioner(c)
	if err != nil {
		return httpError(err)
	}

	summary, err := h.statsService.Compute(c.Request().Context(), practitioner.ID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
