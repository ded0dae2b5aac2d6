package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"therapycare/internal/auth"
	"therapycare/internal/config"
	"therapycare/internal/handler"
	"therapycare/internal/repository"
)

// Handlers groups the handlers wired by Register.
type Handlers struct {
	Auth        *handler.AuthHandler
	Public      *handler.PublicHandler
	Profile     *handler.ProfileHandler
	Patient     *handler.PatientHandler
	Appointment *handler.AppointmentHandler
	Stats       *handler.StatsHandler
	Contact     *handler.ContactHandler
	Taxonomy    *handler.TaxonomyHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	jwtService *auth.JWTService,
	practitionerRepo repository.PractitionerRepository,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/categories", h.Taxonomy.ListCategories)
	api.GET("/categories/:slug", h.Taxonomy.GetCategory)
	api.GET("/specialties", h.Taxonomy.ListSpecialties)
	api.GET("/specialties/:name", h.Taxonomy.GetSpecialty)
	api.GET("/public/practitioners", h.Public.SearchPractitioners)
	api.GET("/public/practitioner/:id", h.Public.GetPractitioner)
	api.POST("/contact", h.Contact.SubmitContact)

	// Secured routes: token check, then practitioner resolution
	secured := api.Group("", auth.JWTMiddleware(jwtService), auth.RequirePractitioner(practitionerRepo))

	secured.GET("/practitioner/profile", h.Profile.GetProfile)
	secured.PUT("/practitioner/profile", h.Profile.UpdateProfile)

	secured.GET("/patients", h.Patient.ListPatients)
	secured.POST("/patients", h.Patient.CreatePatient)
	secured.PUT("/patients/:id", h.Patient.UpdatePatient)
	secured.DELETE("/patients/:id", h.Patient.DeletePatient)

	secured.GET("/appointments", h.Appointment.ListAppointments)
	secured.POST("/appointments", h.Appointment.CreateAppointment)
	secured.PUT("/appointments/:id", h.Appointment.UpdateAppointment)
	secured.DELETE("/appointments/:id", h.Appointment.DeleteAppointment)

	secured.GET("/stats", h.Stats.GetStats)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
