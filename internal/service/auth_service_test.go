package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"therapycare/internal/auth"
	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
)

func TestAuthService_Register(t *testing.T) {
	tests := []struct {
		name          string
		input         RegisterInput
		setupMock     func(*MockPractitionerRepository)
		expectedError error
	}{
		{
			name: "successful registration",
			input: RegisterInput{
				FullName:  "Marie Dupont",
				Email:     "marie@example.com",
				Password:  "secret123",
				Specialty: "Sophrologue",
				Phone:     "0601020304",
			},
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Practitioner")).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "email already registered",
			input: RegisterInput{
				FullName: "Marie Dupont",
				Email:    "taken@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "taken@example.com").
					Return(&model.Practitioner{Email: "taken@example.com"}, nil)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
		{
			name: "duplicate insert lost the race",
			input: RegisterInput{
				FullName: "Marie Dupont",
				Email:    "racy@example.com",
				Password: "secret123",
			},
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "racy@example.com").Return(nil, apperrors.ErrNotFound)
				m.On("Create", mock.Anything, mock.AnythingOfType("*model.Practitioner")).
					Return(apperrors.ErrEmailTaken)
			},
			expectedError: apperrors.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPractitionerRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, practitioner, err := service.Register(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, practitioner)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.NotNil(t, practitioner)
				assert.NotEmpty(t, practitioner.ID)
				assert.Equal(t, tt.input.Email, practitioner.Email)
				assert.Equal(t, tt.input.FullName, practitioner.FullName)
				assert.Equal(t, "Lun-Ven 9h-18h", practitioner.Schedule)
				assert.NotEqual(t, tt.input.Password, practitioner.PasswordHash)
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(practitioner.PasswordHash), []byte(tt.input.Password)))

				subject, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, practitioner.ID, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), 10)
	assert.NoError(t, err)

	stored := &model.Practitioner{
		ID:           "practitioner-42",
		Email:        "marie@example.com",
		PasswordHash: string(hash),
	}

	tests := []struct {
		name          string
		email         string
		password      string
		setupMock     func(*MockPractitionerRepository)
		expectedError error
	}{
		{
			name:     "successful login",
			email:    "marie@example.com",
			password: "secret123",
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(stored, nil)
			},
			expectedError: nil,
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret123",
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, apperrors.ErrNotFound)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "marie@example.com",
			password: "wrong-password",
			setupMock: func(m *MockPractitionerRepository) {
				m.On("FindByEmail", mock.Anything, "marie@example.com").Return(stored, nil)
			},
			expectedError: apperrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockPractitionerRepository)
			tt.setupMock(mockRepo)

			jwtService := auth.NewJWTService("test-secret")
			service := NewAuthService(mockRepo, jwtService)

			token, practitioner, err := service.Login(context.Background(), tt.email, tt.password)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Empty(t, token)
				assert.Nil(t, practitioner)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)
				assert.Equal(t, stored.ID, practitioner.ID)

				subject, err := jwtService.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, stored.ID, subject)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
