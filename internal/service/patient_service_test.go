package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
)

func TestPatientService_Create(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Patient")).Return(nil)

	service := NewPatientService(mockRepo)

	patient, err := service.Create(context.Background(), "owner-1", PatientInput{
		FullName: "Alice Martin",
		Email:    "alice@example.com",
		Phone:    "0601020304",
		Notes:    "first consultation",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, patient.ID)
	assert.Equal(t, "owner-1", patient.PractitionerID)
	assert.Equal(t, "Alice Martin", patient.FullName)
	assert.Equal(t, "alice@example.com", patient.Email)
	assert.False(t, patient.CreatedAt.IsZero())
	mockRepo.AssertExpectations(t)
}

func TestPatientService_List(t *testing.T) {
	stored := []model.Patient{
		{ID: "p1", PractitionerID: "owner-1"},
		{ID: "p2", PractitionerID: "owner-1"},
	}

	mockRepo := new(MockPatientRepository)
	mockRepo.On("ListByOwner", mock.Anything, "owner-1").Return(stored, nil)

	service := NewPatientService(mockRepo)

	patients, err := service.List(context.Background(), "owner-1")
	assert.NoError(t, err)
	assert.Equal(t, stored, patients)
	mockRepo.AssertExpectations(t)
}

func TestPatientService_Update(t *testing.T) {
	newPhone := "0699887766"

	tests := []struct {
		name          string
		id            string
		owner         string
		update        *model.PatientUpdate
		setupMock     func(*MockPatientRepository)
		expectedError error
	}{
		{
			name:   "partial update forwards only set fields",
			id:     "p1",
			owner:  "owner-1",
			update: &model.PatientUpdate{Phone: &newPhone},
			setupMock: func(m *MockPatientRepository) {
				m.On("UpdateOwned", mock.Anything, "p1", "owner-1", map[string]interface{}{"phone": newPhone}).
					Return(&model.Patient{ID: "p1", PractitionerID: "owner-1", Phone: newPhone}, nil)
			},
		},
		{
			name:   "empty update is a read back",
			id:     "p1",
			owner:  "owner-1",
			update: &model.PatientUpdate{},
			setupMock: func(m *MockPatientRepository) {
				m.On("UpdateOwned", mock.Anything, "p1", "owner-1", map[string]interface{}{}).
					Return(&model.Patient{ID: "p1", PractitionerID: "owner-1"}, nil)
			},
		},
		{
			name:   "record owned by someone else reads as absent",
			id:     "p1",
			owner:  "owner-2",
			update: &model.PatientUpdate{Phone: &newPhone},
			setupMock: func(m *MockPatientRepository) {
				m.On("UpdateOwned", mock.Anything, "p1", "owner-2", mock.Anything).
					Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPatientRepository)
			tt.setupMock(mockRepo)

			service := NewPatientService(mockRepo)
			patient, err := service.Update(context.Background(), tt.id, tt.owner, tt.update)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, patient)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.id, patient.ID)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestPatientService_Delete(t *testing.T) {
	mockRepo := new(MockPatientRepository)
	mockRepo.On("DeleteOwned", mock.Anything, "p1", "owner-1").Return(nil)
	mockRepo.On("DeleteOwned", mock.Anything, "p1", "owner-2").Return(apperrors.ErrNotFound)

	service := NewPatientService(mockRepo)

	assert.NoError(t, service.Delete(context.Background(), "p1", "owner-1"))
	assert.ErrorIs(t, service.Delete(context.Background(), "p1", "owner-2"), apperrors.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
