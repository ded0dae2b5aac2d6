package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	apperrors "therapycare/internal/errors"
)

// ScopedRepository is the shared owner-scoped persistence contract for
// records owned by exactly one practitioner. Every read, update and delete
// filters on (id AND owner), so a record is never visible to, or mutable by,
// any practitioner other than its owner; cross-owner access reads as absent.
type ScopedRepository[T any] interface {
	ListByOwner(ctx context.Context, owner string) ([]T, error)
	Create(ctx context.Context, record *T) error
	FindOwned(ctx context.Context, id, owner string) (*T, error)
	// UpdateOwned applies a partial $set update and returns the record as it
	// reads back after the write. The ownership check and the write are two
	// store operations; the race window in between is accepted.
	UpdateOwned(ctx context.Context, id, owner string, fields map[string]interface{}) (*T, error)
	DeleteOwned(ctx context.Context, id, owner string) error
}

type scopedRepository[T any] struct {
	coll *mongo.Collection
	kind string
}

func newScopedRepository[T any](coll *mongo.Collection, kind string) *scopedRepository[T] {
	return &scopedRepository[T]{coll: coll, kind: kind}
}

func ownedFilter(id, owner string) bson.M {
	return bson.M{"id": id, "practitioner_id": owner}
}

// ListByOwner returns all records owned by the practitioner, in store
// iteration order.
func (r *scopedRepository[T]) ListByOwner(ctx context.Context, owner string) ([]T, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"practitioner_id": owner})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", r.kind, err)
	}
	defer cursor.Close(ctx)

	records := []T{}
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.kind, err)
	}
	return records, nil
}

// Create inserts a new record.
func (r *scopedRepository[T]) Create(ctx context.Context, record *T) error {
	if _, err := r.coll.InsertOne(ctx, record); err != nil {
		return fmt.Errorf("insert %s: %w", r.kind, err)
	}
	return nil
}

// FindOwned returns the record iff it exists and belongs to the owner.
func (r *scopedRepository[T]) FindOwned(ctx context.Context, id, owner string) (*T, error) {
	var record T
	if err := r.coll.FindOne(ctx, ownedFilter(id, owner)).Decode(&record); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find %s: %w", r.kind, err)
	}
	return &record, nil
}

// UpdateOwned verifies ownership, applies the partial update and reads the
// record back.
func (r *scopedRepository[T]) UpdateOwned(ctx context.Context, id, owner string, fields map[string]interface{}) (*T, error) {
	if _, err := r.FindOwned(ctx, id, owner); err != nil {
		return nil, err
	}

	if len(fields) > 0 {
		if _, err := r.coll.UpdateOne(ctx, ownedFilter(id, owner), bson.M{"$set": fields}); err != nil {
			return nil, fmt.Errorf("update %s: %w", r.kind, err)
		}
	}

	return r.FindOwned(ctx, id, owner)
}

// DeleteOwned hard-deletes the record iff it belongs to the owner.
func (r *scopedRepository[T]) DeleteOwned(ctx context.Context, id, owner string) error {
	res, err := r.coll.DeleteOne(ctx, ownedFilter(id, owner))
	if err != nil {
		return fmt.Errorf("delete %s: %w", r.kind, err)
	}
	if res.DeletedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
