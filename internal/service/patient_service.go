package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// PatientInput carries the fields of a new patient record.
type PatientInput struct {
	FullName string
	Email    string
	Phone    string
	Notes    string
}

// PatientService exposes the owner-scoped patient roster operations.
type PatientService interface {
	List(ctx context.Context, owner string) ([]model.Patient, error)
	Create(ctx context.Context, owner string, input PatientInput) (*model.Patient, error)
	Update(ctx context.Context, id, owner string, update *model.PatientUpdate) (*model.Patient, error)
	Delete(ctx context.Context, id, owner string) error
}

type patientService struct {
	patientRepo repository.PatientRepository
}

// NewPatientService creates a new patient roster service.
func NewPatientService(patientRepo repository.PatientRepository) PatientService {
	return &patientService{patientRepo: patientRepo}
}

// List returns the owner's patients in store iteration order.
func (s *patientService) List(ctx context.Context, owner string) ([]model.Patient, error) {
	return s.patientRepo.ListByOwner(ctx, owner)
}

// Create records a new patient for the owner with a fresh id and timestamp.
func (s *patientService) Create(ctx context.Context, owner string, input PatientInput) (*model.Patient, error) {
	patient := &model.Patient{
		ID:             uuid.New().String(),
		PractitionerID: owner,
		FullName:       input.FullName,
		Email:          input.Email,
		Phone:          input.Phone,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.patientRepo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Update applies a partial update to an owned patient. A patient belonging
// to another practitioner reads as absent.
func (s *patientService) Update(ctx context.Context, id, owner string, update *model.PatientUpdate) (*model.Patient, error) {
	return s.patientRepo.UpdateOwned(ctx, id, owner, update.Fields())
}

// Delete hard-deletes an owned patient.
func (s *patientService) Delete(ctx context.Context, id, owner string) error {
	return s.patientRepo.DeleteOwned(ctx, id, owner)
}
