package auth

import (
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// PractitionerContextKey is the echo context key the guard stores the
// resolved practitioner record under.
const PractitionerContextKey = "practitioner"

// subjectContextKey is where the echo-jwt layer leaves the verified subject.
const subjectContextKey = "user"

// JWTMiddleware verifies the bearer token's signature and expiry and leaves
// the verified practitioner id in the context. Expired and malformed tokens
// both map to the same unauthorized outcome.
func JWTMiddleware(jwtService *JWTService) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey: subjectContextKey,
		ParseTokenFunc: func(c echo.Context, token string) (interface{}, error) {
			practitionerID, err := jwtService.ValidateToken(token)
			if err != nil {
				return nil, err
			}
			return practitionerID, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
				Error: apperrors.ErrUnauthorized.Error(),
				Code:  "UNAUTHORIZED",
			})
		},
	})
}

// RequirePractitioner resolves the verified subject to a stored practitioner
// record and attaches it to the context. A token whose subject no longer
// exists fails exactly like any other auth failure, so account existence is
// never leaked. One store read, no writes.
func RequirePractitioner(repo repository.PractitionerRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			practitionerID, ok := c.Get(subjectContextKey).(string)
			if !ok || practitionerID == "" {
				return unauthorized()
			}

			practitioner, err := repo.FindByID(c.Request().Context(), practitionerID)
			if err != nil {
				return unauthorized()
			}

			c.Set(PractitionerContextKey, practitioner)
			return next(c)
		}
	}
}

// CurrentPractitioner returns the practitioner record attached by the guard.
func CurrentPractitioner(c echo.Context) (*model.Practitioner, error) {
	practitioner, ok := c.Get(PractitionerContextKey).(*model.Practitioner)
	if !ok || practitioner == nil {
		return nil, apperrors.ErrUnauthorized
	}
	return practitioner, nil
}

func unauthorized() *echo.HTTPError {
	return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
		Error: apperrors.ErrUnauthorized.Error(),
		Code:  "UNAUTHORIZED",
	})
}
