package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	ProductCollection = "product"
	OrderCollection   = "order"
)

var errNotConnected = errors.New("database not connected")

// StorageError reports a failed gateway operation along with its cause.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	if e.Cause == nil {
		return e.Op
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }

func Connect(uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, err
	}
	return client, nil
}

// Store is the document gateway shared by all request handlers. One
// instance lives for the whole process; it performs no retries and no
// transactions. A nil db is allowed: the process still serves traffic
// and reports the missing connection through diagnostics, while every
// operation fails with a StorageError.
type Store struct {
	db *mongo.Database
}

func NewStore(db *mongo.Database) *Store {
	return &Store{db: db}
}

func (s *Store) Ready() bool {
	return s != nil && s.db != nil
}

func (s *Store) Ping(ctx context.Context) error {
	if !s.Ready() {
		return &StorageError{Op: "ping", Cause: errNotConnected}
	}
	if err := s.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return &StorageError{Op: "ping", Cause: err}
	}
	return nil
}

// CreateDocument inserts doc into the named collection and returns the
// hex form of the store-assigned identifier.
func (s *Store) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if !s.Ready() {
		return "", &StorageError{Op: "insert " + collection, Cause: errNotConnected}
	}

	res, err := s.db.Collection(collection).InsertOne(ctx, doc)
	if err != nil {
		return "", &StorageError{Op: "insert " + collection, Cause: err}
	}

	id, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", &StorageError{Op: "insert " + collection, Cause: fmt.Errorf("unexpected id type %T", res.InsertedID)}
	}
	return id.Hex(), nil
}

// GetDocuments returns every document in the named collection in the
// store's native order. Documents keep their internal "_id" field;
// response shaping is the caller's concern.
func (s *Store) GetDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	if !s.Ready() {
		return nil, &StorageError{Op: "find " + collection, Cause: errNotConnected}
	}

	cursor, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, &StorageError{Op: "find " + collection, Cause: err}
	}
	defer cursor.Close(ctx)

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &StorageError{Op: "decode " + collection, Cause: err}
	}
	return docs, nil
}

// CollectionNames lists up to limit collection names, used as the
// diagnostics connectivity probe.
func (s *Store) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if !s.Ready() {
		return nil, &StorageError{Op: "list collections", Cause: errNotConnected}
	}

	names, err := s.db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		return nil, &StorageError{Op: "list collections", Cause: err}
	}
	if limit > 0 && len(names) > limit {
		names = names[:limit]
	}
	return names, nil
}
