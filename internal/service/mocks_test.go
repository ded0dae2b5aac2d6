package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// MockPractitionerRepository is a mock implementation of PractitionerRepository.
type MockPractitionerRepository struct {
	mock.Mock
}

func (m *MockPractitionerRepository) Create(ctx context.Context, p *model.Practitioner) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPractitionerRepository) FindByID(ctx context.Context, id string) (*model.Practitioner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Practitioner), args.Error(1)
}

func (m *MockPractitionerRepository) FindByEmail(ctx context.Context, email string) (*model.Practitioner, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Practitioner), args.Error(1)
}

func (m *MockPractitionerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *MockPractitionerRepository) Search(ctx context.Context, filter repository.SearchFilter) ([]model.PractitionerPublic, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PractitionerPublic), args.Error(1)
}

// MockPatientRepository is a mock implementation of PatientRepository.
type MockPatientRepository struct {
	mock.Mock
}

func (m *MockPatientRepository) ListByOwner(ctx context.Context, owner string) ([]model.Patient, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Patient), args.Error(1)
}

func (m *MockPatientRepository) Create(ctx context.Context, record *model.Patient) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockPatientRepository) FindOwned(ctx context.Context, id, owner string) (*model.Patient, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) UpdateOwned(ctx context.Context, id, owner string, fields map[string]interface{}) (*model.Patient, error) {
	args := m.Called(ctx, id, owner, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Patient), args.Error(1)
}

func (m *MockPatientRepository) DeleteOwned(ctx context.Context, id, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

// MockAppointmentRepository is a mock implementation of AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) ListByOwner(ctx context.Context, owner string) ([]model.Appointment, error) {
	args := m.Called(ctx, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Create(ctx context.Context, record *model.Appointment) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAppointmentRepository) FindOwned(ctx context.Context, id, owner string) (*model.Appointment, error) {
	args := m.Called(ctx, id, owner)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) UpdateOwned(ctx context.Context, id, owner string, fields map[string]interface{}) (*model.Appointment, error) {
	args := m.Called(ctx, id, owner, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) DeleteOwned(ctx context.Context, id, owner string) error {
	args := m.Called(ctx, id, owner)
	return args.Error(0)
}

// MockContactRepository is a mock implementation of ContactRepository.
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
