package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

var ErrNotConfigured = errors.New("no database configured")

// Record is implemented by documents that carry server-assigned timestamps.
type Record interface {
	SetTimestamps(t time.Time)
}

// Store is the document gateway over the shared Mongo handle. Both fields are
// nil when no database is configured; reads then fall back to seed data and
// writes fail with ErrNotConfigured.
type Store struct {
	Cli *mongo.Client
	DB  *mongo.Database
}

func (s *Store) Available() bool {
	return s != nil && s.DB != nil
}

// List returns up to limit documents matching filter, in natural order.
func (s *Store) List(ctx context.Context, collection string, filter bson.M, limit int64) ([]bson.M, error) {

	if !s.Available() {
		return nil, ErrNotConfigured
	}

	cur, err := s.DB.Collection(collection).Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("list %s: %w", collection, err)
	}

	return docs, nil

}

// Create stamps the record, inserts it and returns the generated id.
func (s *Store) Create(ctx context.Context, collection string, doc any) (bson.ObjectID, error) {

	if !s.Available() {
		return bson.ObjectID{}, ErrNotConfigured
	}

	if rec, ok := doc.(Record); ok {
		rec.SetTimestamps(time.Now().UTC())
	}

	res, err := s.DB.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("create %s: %w", collection, err)
	}

	id, ok := res.InsertedID.(bson.ObjectID)
	if !ok {
		return bson.ObjectID{}, fmt.Errorf("create %s: unexpected id type %T", collection, res.InsertedID)
	}

	return id, nil

}

// Ping checks primary reachability for the diagnostic endpoint.
func (s *Store) Ping(ctx context.Context) error {
	if !s.Available() {
		return ErrNotConfigured
	}
	return s.Cli.Ping(ctx, readpref.Primary())
}

func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrNotConfigured
	}
	return s.DB.ListCollectionNames(ctx, bson.M{})
}
