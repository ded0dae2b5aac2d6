package repository

import (
	"go.mongodb.org/mongo-driver/mongo"

	"therapycare/internal/model"
)

// PatientRepository defines owner-scoped patient persistence operations.
type PatientRepository = ScopedRepository[model.Patient]

// NewPatientRepository creates a new patient repository.
func NewPatientRepository(coll *mongo.Collection) PatientRepository {
	return newScopedRepository[model.Patient](coll, "patient")
}
