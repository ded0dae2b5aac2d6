package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"therapycare/internal/auth"
	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// defaultSchedule is the schedule string new practitioners start with.
const defaultSchedule = "Lun-Ven 9h-18h"

// RegisterInput carries the registration fields. Specialty is free text and
// is not validated against the taxonomy.
type RegisterInput struct {
	FullName  string
	Email     string
	Password  string
	Specialty string
	Phone     string
}

// AuthService handles practitioner registration and login.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (token string, practitioner *model.Practitioner, err error)
	Login(ctx context.Context, email, password string) (token string, practitioner *model.Practitioner, err error)
}

type authService struct {
	practitionerRepo repository.PractitionerRepository
	jwtService       *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(practitionerRepo repository.PractitionerRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		practitionerRepo: practitionerRepo,
		jwtService:       jwtService,
	}
}

// Register creates a new practitioner with a hashed password and issues a
// token for the fresh id. Registering an email that already exists fails
// with ErrEmailTaken and writes nothing.
func (s *authService) Register(ctx context.Context, input RegisterInput) (string, *model.Practitioner, error) {
	existing, err := s.practitionerRepo.FindByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return "", nil, apperrors.ErrEmailTaken
	}
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return "", nil, fmt.Errorf("check email: %w", err)
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	practitioner := &model.Practitioner{
		ID:           uuid.New().String(),
		FullName:     input.FullName,
		Email:        input.Email,
		PasswordHash: hash,
		Specialty:    input.Specialty,
		Phone:        input.Phone,
		Schedule:     defaultSchedule,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.practitionerRepo.Create(ctx, practitioner); err != nil {
		return "", nil, err
	}

	token, err := s.jwtService.GenerateToken(practitioner.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, practitioner, nil
}

// Login authenticates a practitioner. Unknown email and wrong password
// produce the identical error so neither check is revealed.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.Practitioner, error) {
	practitioner, err := s.practitionerRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find practitioner: %w", err)
	}

	if !auth.CheckPassword(password, practitioner.PasswordHash) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(practitioner.ID)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, practitioner, nil
}
