package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// defaultDuration is applied when an appointment is created without one.
const defaultDuration = 60

// AppointmentInput carries the fields of a new appointment. The patient name
// is denormalized onto the record as given; callers are responsible for
// passing a name consistent with the patient id.
type AppointmentInput struct {
	PatientID   string
	PatientName string
	Date        string // YYYY-MM-DD
	Time        string // HH:MM
	Duration    int
	Notes       string
}

// AppointmentService exposes the owner-scoped appointment ledger operations.
// Overlapping appointments are not detected; multiple appointments may
// occupy the same slot.
type AppointmentService interface {
	List(ctx context.Context, owner string) ([]model.Appointment, error)
	Create(ctx context.Context, owner string, input AppointmentInput) (*model.Appointment, error)
	Update(ctx context.Context, id, owner string, update *model.AppointmentUpdate) (*model.Appointment, error)
	Delete(ctx context.Context, id, owner string) error
}

type appointmentService struct {
	appointmentRepo repository.AppointmentRepository
}

// NewAppointmentService creates a new appointment ledger service.
func NewAppointmentService(appointmentRepo repository.AppointmentRepository) AppointmentService {
	return &appointmentService{appointmentRepo: appointmentRepo}
}

// List returns the owner's appointments in store iteration order.
func (s *appointmentService) List(ctx context.Context, owner string) ([]model.Appointment, error) {
	return s.appointmentRepo.ListByOwner(ctx, owner)
}

// Create records a new appointment for the owner.
func (s *appointmentService) Create(ctx context.Context, owner string, input AppointmentInput) (*model.Appointment, error) {
	duration := input.Duration
	if duration == 0 {
		duration = defaultDuration
	}

	appointment := &model.Appointment{
		ID:             uuid.New().String(),
		PractitionerID: owner,
		PatientID:      input.PatientID,
		PatientName:    input.PatientName,
		Date:           input.Date,
		Time:           input.Time,
		Duration:       duration,
		Notes:          input.Notes,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.appointmentRepo.Create(ctx, appointment); err != nil {
		return nil, err
	}
	return appointment, nil
}

// Update applies a partial update to an owned appointment.
func (s *appointmentService) Update(ctx context.Context, id, owner string, update *model.AppointmentUpdate) (*model.Appointment, error) {
	return s.appointmentRepo.UpdateOwned(ctx, id, owner, update.Fields())
}

// Delete hard-deletes an owned appointment.
func (s *appointmentService) Delete(ctx context.Context, id, owner string) error {
	return s.appointmentRepo.DeleteOwned(ctx, id, owner)
}
