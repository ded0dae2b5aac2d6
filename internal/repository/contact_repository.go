package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"therapycare/internal/model"
)

// ContactRepository defines contact message persistence operations. Messages
// are write-only from the API's perspective.
type ContactRepository interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
}

type contactRepository struct {
	coll *mongo.Collection
}

// NewContactRepository creates a new contact message repository.
func NewContactRepository(coll *mongo.Collection) ContactRepository {
	return &contactRepository{coll: coll}
}

func (r *contactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}
