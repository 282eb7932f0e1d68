package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"outlet-backend/internal/events"
	"outlet-backend/internal/middleware"
)

type fakeStore struct {
	createFunc          func(ctx context.Context, collection string, doc interface{}) (string, error)
	getFunc             func(ctx context.Context, collection string) ([]bson.M, error)
	collectionNamesFunc func(ctx context.Context, limit int) ([]string, error)
	ready               bool
}

func (f *fakeStore) CreateDocument(ctx context.Context, collection string, doc interface{}) (string, error) {
	if f.createFunc != nil {
		return f.createFunc(ctx, collection, doc)
	}
	return "000000000000000000000000", nil
}

func (f *fakeStore) GetDocuments(ctx context.Context, collection string) ([]bson.M, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, collection)
	}
	return []bson.M{}, nil
}

func (f *fakeStore) CollectionNames(ctx context.Context, limit int) ([]string, error) {
	if f.collectionNamesFunc != nil {
		return f.collectionNamesFunc(ctx, limit)
	}
	return []string{}, nil
}

func (f *fakeStore) Ready() bool { return f.ready }

type fakePublisher struct {
	published []events.OrderCreated
	err       error
}

func (f *fakePublisher) PublishOrderCreated(ctx context.Context, ev events.OrderCreated) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, ev)
	return nil
}

func newTestRouter(store DocumentStore, publisher OrderEventPublisher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	r.GET("/", Home())
	r.GET("/test", TestDatabase(store))
	r.GET("/api/products", GetProducts(store))
	r.POST("/api/products", CreateProduct(store))
	r.POST("/api/orders", CreateOrder(store, publisher))
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
