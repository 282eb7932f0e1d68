package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"outlet-backend/internal/events"
)

// DocumentStore is the slice of the persistence gateway the handlers
// need. database.Store satisfies it; tests substitute a fake.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error)
	GetDocuments(ctx context.Context, collection string) ([]bson.M, error)
	CollectionNames(ctx context.Context, limit int) ([]string, error)
	Ready() bool
}

// OrderEventPublisher emits order lifecycle events. A nil publisher
// disables publishing entirely.
type OrderEventPublisher interface {
	PublishOrderCreated(ctx context.Context, ev events.OrderCreated) error
}
