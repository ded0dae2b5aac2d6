package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"therapycare/docs"
	"therapycare/internal/auth"
	"therapycare/internal/config"
	"therapycare/internal/db"
	"therapycare/internal/handler"
	"therapycare/internal/repository"
	"therapycare/internal/router"
	"therapycare/internal/service"
)

// @title TherapyCare API
// @version 1.0
// @description Directory and booking API for wellness practitioners with JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file loaded")
	}
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongo, err := db.Connect(ctx, cfg.MongoURL, cfg.DBName)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}
	defer func() {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		if err := mongo.Close(closeCtx); err != nil {
			log.Printf("mongo disconnect: %v", err)
		}
	}()

	// Initialize repositories
	practitionerRepo := repository.NewPractitionerRepository(mongo.Collection(db.PractitionersCollection))
	patientRepo := repository.NewPatientRepository(mongo.Collection(db.PatientsCollection))
	appointmentRepo := repository.NewAppointmentRepository(mongo.Collection(db.AppointmentsCollection))
	contactRepo := repository.NewContactRepository(mongo.Collection(db.ContactMessagesCollection))

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(practitionerRepo, jwtService)
	practitionerService := service.NewPractitionerService(practitionerRepo)
	patientService := service.NewPatientService(patientRepo)
	appointmentService := service.NewAppointmentService(appointmentRepo)
	statsService := service.NewStatsService(appointmentRepo, patientRepo)
	contactService := service.NewContactService(contactRepo)

	e := echo.New()
	e.Use(middleware.RequestID())

	router.Register(e, cfg, jwtService, practitionerRepo, router.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Public:      handler.NewPublicHandler(practitionerService),
		Profile:     handler.NewProfileHandler(practitionerService),
		Patient:     handler.NewPatientHandler(patientService),
		Appointment: handler.NewAppointmentHandler(appointmentService),
		Stats:       handler.NewStatsHandler(statsService),
		Contact:     handler.NewContactHandler(contactService),
		Taxonomy:    handler.NewTaxonomyHandler(),
	})

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
