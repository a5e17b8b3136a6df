// Package mongostore keeps subscribers in a MongoDB collection with a unique
// index on email.
package mongostore

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	mongoopts "go.mongodb.org/mongo-driver/v2/mongo/options"

	mongox "github.com/dmitrymomot/newsletter/pkg/mongo"
	"github.com/dmitrymomot/newsletter/svc/subscriber"
)

// DefaultCollection is the collection used unless WithCollection says otherwise.
const DefaultCollection = "subscriptions"

const emailIndexName = "email_unique"

type document struct {
	Email   string    `bson:"email"`
	Name    string    `bson:"name"`
	Created time.Time `bson:"created"`
}

// Store implements subscriber.Storage.
type Store struct {
	coll *mongo.Collection
}

// Option configures a Store.
type Option func(*options)

type options struct {
	collection string
}

// WithCollection overrides DefaultCollection.
func WithCollection(name string) Option {
	return func(o *options) {
		if name != "" {
			o.collection = name
		}
	}
}

// New returns a Store on db. Call EnsureIndexes before serving traffic;
// without the index concurrent first inserts may both succeed.
func New(db *mongo.Database, opts ...Option) *Store {
	if db == nil {
		panic("mongostore.New: nil database")
	}
	o := options{collection: DefaultCollection}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{coll: db.Collection(o.collection)}
}

// EnsureIndexes creates the unique email index. It is a no-op when the index
// already exists with the same definition.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: mongoopts.Index().SetUnique(true).SetName(emailIndexName),
	})
	if err != nil {
		return errors.Join(ErrEnsureIndexes, err)
	}
	return nil
}

// InsertIfAbsent upserts with $setOnInsert so an existing document is never
// modified. A duplicate key error means a concurrent upsert won the race.
func (s *Store) InsertIfAbsent(ctx context.Context, rec subscriber.Record) (bool, error) {
	filter := bson.D{{Key: "email", Value: rec.Email}}
	update := bson.D{{Key: "$setOnInsert", Value: document{
		Email:   rec.Email,
		Name:    rec.Name,
		Created: rec.Created,
	}}}

	res, err := s.coll.UpdateOne(ctx, filter, update, mongoopts.UpdateOne().SetUpsert(true))
	switch {
	case mongox.IsDuplicateKeyError(err):
		return false, nil
	case err != nil:
		return false, err
	}
	return res.UpsertedCount == 1, nil
}

func (s *Store) FindByEmail(ctx context.Context, email string) (subscriber.Record, error) {
	var doc document
	err := s.coll.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&doc)
	switch {
	case errors.Is(err, mongo.ErrNoDocuments):
		return subscriber.Record{}, subscriber.ErrNotFound
	case err != nil:
		return subscriber.Record{}, err
	}
	return subscriber.Record{
		Email:   doc.Email,
		Name:    doc.Name,
		Created: doc.Created.UTC(),
	}, nil
}

// Healthcheck pings the deployment behind the collection.
func (s *Store) Healthcheck(ctx context.Context) error {
	return mongox.Healthcheck(s.coll.Database().Client())(ctx)
}
