package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"therapycare/internal/model"
)

// AppointmentRepository defines owner-scoped appointment persistence operations.
type AppointmentRepository = ScopedRepository[model.Appointment]

// NewAppointmentRepository creates a new appointment repository.
func NewAppointmentRepository(coll *mongo.Collection) AppointmentRepository {
	return newScopedRepository[model.Appointment](coll, "appointment")
}
