package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
)

func TestAppointmentService_Create(t *testing.T) {
	tests := []struct {
		name             string
		input            AppointmentInput
		expectedDuration int
	}{
		{
			name: "explicit duration kept",
			input: AppointmentInput{
				PatientID:   "p1",
				PatientName: "Alice Martin",
				Date:        "2024-06-12",
				Time:        "09:00",
				Duration:    30,
			},
			expectedDuration: 30,
		},
		{
			name: "zero duration gets the default",
			input: AppointmentInput{
				PatientID:   "p1",
				PatientName: "Alice Martin",
				Date:        "2024-06-12",
				Time:        "09:00",
			},
			expectedDuration: 60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAppointmentRepository)
			mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Appointment")).Return(nil)

			service := NewAppointmentService(mockRepo)

			appointment, err := service.Create(context.Background(), "owner-1", tt.input)
			assert.NoError(t, err)
			assert.NotEmpty(t, appointment.ID)
			assert.Equal(t, "owner-1", appointment.PractitionerID)
			assert.Equal(t, tt.input.PatientID, appointment.PatientID)
			assert.Equal(t, tt.input.PatientName, appointment.PatientName)
			assert.Equal(t, tt.input.Date, appointment.Date)
			assert.Equal(t, tt.expectedDuration, appointment.Duration)
			assert.False(t, appointment.CreatedAt.IsZero())
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAppointmentService_Update(t *testing.T) {
	newDate := "2024-07-01"

	tests := []struct {
		name          string
		owner         string
		setupMock     func(*MockAppointmentRepository)
		expectedError error
	}{
		{
			name:  "owner updates the date",
			owner: "owner-1",
			setupMock: func(m *MockAppointmentRepository) {
				m.On("UpdateOwned", mock.Anything, "a1", "owner-1", map[string]interface{}{"date": newDate}).
					Return(&model.Appointment{ID: "a1", PractitionerID: "owner-1", Date: newDate}, nil)
			},
		},
		{
			name:  "cross owner reads as absent",
			owner: "owner-2",
			setupMock: func(m *MockAppointmentRepository) {
				m.On("UpdateOwned", mock.Anything, "a1", "owner-2", mock.Anything).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockAppointmentRepository)
			tt.setupMock(mockRepo)

			service := NewAppointmentService(mockRepo)
			appointment, err := service.Update(context.Background(), "a1", tt.owner, &model.AppointmentUpdate{Date: &newDate})

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, appointment)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, newDate, appointment.Date)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAppointmentService_Delete(t *testing.T) {
	mockRepo := new(MockAppointmentRepository)
	mockRepo.On("DeleteOwned", mock.Anything, "a1", "owner-1").Return(nil)
	mockRepo.On("DeleteOwned", mock.Anything, "a1", "owner-2").Return(apperrors.ErrNotFound)

	service := NewAppointmentService(mockRepo)

	assert.NoError(t, service.Delete(context.Background(), "a1", "owner-1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "a1", "owner-2"), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
