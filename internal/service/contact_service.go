package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"therapycare/internal/model"
	"therapycare/internal/repository"
)

// ContactService stores inbound contact messages.
type ContactService interface {
	Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error)
}

type contactService struct {
	contactRepo repository.ContactRepository
}

// NewContactService creates a new contact message service.
func NewContactService(contactRepo repository.ContactRepository) ContactService {
	return &contactService{contactRepo: contactRepo}
}

// Submit persists the message. There is no read path; messages are consumed
// out of band.
func (s *contactService) Submit(ctx context.Context, name, email, message string) (*model.ContactMessage, error) {
	msg := &model.ContactMessage{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contactRepo.Create(ctx, msg); err != nil {
		return nil, err
	}
	return msg, nil
}
