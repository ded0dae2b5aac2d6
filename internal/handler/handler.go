package handler

import (
	"github.com/labstack/echo/v4"

	apperrors "therapycare/internal/errors"
)

// httpError maps a domain error to the echo error carrying the stable status
// and code for its taxonomy kind.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
