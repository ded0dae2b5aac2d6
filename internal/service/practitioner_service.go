package service

import (
	"context"
	"fmt"

	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// PractitionerService exposes the public directory and owner profile operations.
type PractitionerService interface {
	Search(ctx context.Context, filter repository.SearchFilter) ([]model.PractitionerPublic, error)
	GetPublic(ctx context.Context, id string) (*model.PractitionerPublic, error)
	UpdateProfile(ctx context.Context, id string, update *model.PractitionerUpdate) (*model.Practitioner, error)
}

type practitionerService struct {
	practitionerRepo repository.PractitionerRepository
}

// NewPractitionerService creates a new practitioner directory service.
func NewPractitionerService(practitionerRepo repository.PractitionerRepository) PractitionerService {
	return &practitionerService{practitionerRepo: practitionerRepo}
}

// Search runs the public directory query; results are capped at the store
// level and never include password hashes.
func (s *practitionerService) Search(ctx context.Context, filter repository.SearchFilter) ([]model.PractitionerPublic, error) {
	return s.practitionerRepo.Search(ctx, filter)
}

// GetPublic returns the public view of one practitioner.
func (s *practitionerService) GetPublic(ctx context.Context, id string) (*model.PractitionerPublic, error) {
	practitioner, err := s.practitionerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return practitioner.Public(), nil
}

// UpdateProfile applies the non-nil fields of the partial update and returns
// the record as it reads back after the write, so storage-level defaults are
// reflected.
func (s *practitionerService) UpdateProfile(ctx context.Context, id string, update *model.PractitionerUpdate) (*model.Practitioner, error) {
	if err := s.practitionerRepo.UpdateFields(ctx, id, update.Fields()); err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return s.practitionerRepo.FindByID(ctx, id)
}
