package repository

import (
	"context"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	apperrors "therapycare/internal/errors"
	"therapycare/internal/model"
)

// searchLimit bounds the public search result set.
const searchLimit = 100

// SearchFilter carries the public search parameters. Specialty and city are
// case-insensitive substring matches; category is an exact match.
type SearchFilter struct {
	Specialty string
	City      string
	Category  string
	SortBy    string // rating | reviews | name
}

// PractitionerRepository defines practitioner persistence operations.
type PractitionerRepository interface {
	Create(ctx context.Context, p *model.Practitioner) error
	FindByID(ctx context.Context, id string) (*model.Practitioner, error)
	FindByEmail(ctx context.Context, email string) (*model.Practitioner, error)
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	Search(ctx context.Context, filter SearchFilter) ([]model.PractitionerPublic, error)
}

type practitionerRepository struct {
	coll *mongo.Collection
}

// NewPractitionerRepository creates a new practitioner repository.
func NewPractitionerRepository(coll *mongo.Collection) PractitionerRepository {
	return &practitionerRepository{coll: coll}
}

// Create inserts a new practitioner document.
func (r *practitionerRepository) Create(ctx context.Context, p *model.Practitioner) error {
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.ErrEmailTaken
		}
		return fmt.Errorf("insert practitioner: %w", err)
	}
	return nil
}

// FindByID finds a practitioner by its opaque id.
func (r *practitionerRepository) FindByID(ctx context.Context, id string) (*model.Practitioner, error) {
	return r.findOne(ctx, bson.M{"id": id})
}

// FindByEmail finds a practitioner by login email. The match is
// case-sensitive under the collection's default binary collation.
func (r *practitionerRepository) FindByEmail(ctx context.Context, email string) (*model.Practitioner, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *practitionerRepository) findOne(ctx context.Context, filter bson.M) (*model.Practitioner, error) {
	var p model.Practitioner
	if err := r.coll.FindOne(ctx, filter).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("find practitioner: %w", err)
	}
	return &p, nil
}

// UpdateFields applies a partial $set update to a practitioner document.
// An empty field set is a no-op.
func (r *practitionerRepository) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	if len(fields) == 0 {
		return nil
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update practitioner: %w", err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Search runs the public directory query. The password hash is projected out
// at the store level so it can never reach a public representation.
func (r *practitionerRepository) Search(ctx context.Context, filter SearchFilter) ([]model.PractitionerPublic, error) {
	query, opts := searchQuery(filter)

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("search practitioners: %w", err)
	}
	defer cursor.Close(ctx)

	results := []model.PractitionerPublic{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("decode practitioners: %w", err)
	}
	return results, nil
}

// searchQuery builds the filter and find options for a directory search.
// Specialty and city become case-insensitive substring regexes with their
// pattern metacharacters escaped; category is an exact equality match.
func searchQuery(filter SearchFilter) (bson.M, *options.FindOptions) {
	query := bson.M{}
	if filter.Specialty != "" {
		query["specialty"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.Specialty), Options: "i"}
	}
	if filter.City != "" {
		query["city"] = primitive.Regex{Pattern: regexp.QuoteMeta(filter.City), Options: "i"}
	}
	if filter.Category != "" {
		query["category"] = filter.Category
	}

	opts := options.Find().
		SetProjection(bson.M{"_id": 0, "password": 0}).
		SetSort(sortSpec(filter.SortBy)).
		SetLimit(searchLimit)

	return query, opts
}

func sortSpec(sortBy string) bson.D {
	switch sortBy {
	case "reviews":
		return bson.D{{Key: "reviews_count", Value: -1}}
	case "name":
		return bson.D{{Key: "full_name", Value: 1}}
	default: // rating
		return bson.D{{Key: "rating", Value: -1}}
	}
}
