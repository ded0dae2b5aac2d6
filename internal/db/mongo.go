package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names used by the repositories.
const (
	PractitionersCollection   = "practitioners"
	PatientsCollection        = "patients"
	AppointmentsCollection    = "appointments"
	ContactMessagesCollection = "contact_messages"
)

// Mongo wraps the client and database handles built once at startup.
type Mongo struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a Mongo connection, verifies it with a ping and ensures
// the unique email index on practitioners.
func Connect(ctx context.Context, url, dbName string) (*Mongo, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		return nil, fmt.Errorf("ping mongo: %w", err)
	}

	m := &Mongo{client: client, db: client.Database(dbName)}
	if err := m.ensureIndexes(ctx); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}
	return m, nil
}

func (m *Mongo) ensureIndexes(ctx context.Context) error {
	// Case-sensitive uniqueness: plain index under the default binary collation.
	_, err := m.db.Collection(PractitionersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Collection returns a handle to a named collection.
func (m *Mongo) Collection(name string) *mongo.Collection {
	return m.db.Collection(name)
}

// Close disconnects the underlying client.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
