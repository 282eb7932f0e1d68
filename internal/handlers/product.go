package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"outlet-backend/internal/database"
	"outlet-backend/internal/middleware"
	"outlet-backend/internal/models"
)

/* =========================
   REQUEST / RESPONSE DTOs
========================= */

// Pointer fields distinguish "absent" (defaulted) from an explicit
// zero: price may legitimately be 0, in_stock defaults to true and
// rating to 0.
type createProductRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
	Category    string   `json:"category" binding:"required"`
	Images      []string `json:"images"`
	InStock     *bool    `json:"in_stock"`
	Rating      *float64 `json:"rating" binding:"omitempty,gte=0,lte=5"`
}

// ProductResponse is the public shape of a listed product: the stored
// fields plus the internal identifier remapped to "id".
type ProductResponse struct {
	models.Product
	ID string `json:"id"`
}

/* =========================
   LIST PRODUCTS
========================= */

func GetProducts(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /api/products"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		docs, err := store.GetDocuments(ctx, database.ProductCollection)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		products := make([]ProductResponse, 0, len(docs))
		for _, doc := range docs {
			product, err := shapeProduct(doc)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, err.Error())
				return
			}
			products = append(products, product)
		}

		log.Printf("[%s] returning %d products request=%s", route, len(products), middleware.GetRequestID(c))
		c.JSON(http.StatusOK, products)
	}
}

// shapeProduct builds the response record from a raw document without
// mutating it, lifting "_id" out into the public id field.
func shapeProduct(doc bson.M) (ProductResponse, error) {
	var id string
	switch v := doc["_id"].(type) {
	case primitive.ObjectID:
		id = v.Hex()
	case string:
		id = v
	}

	data, err := bson.Marshal(doc)
	if err != nil {
		return ProductResponse{}, err
	}

	var p models.Product
	if err := bson.Unmarshal(data, &p); err != nil {
		return ProductResponse{}, err
	}

	return ProductResponse{Product: p, ID: id}, nil
}

/* =========================
   CREATE PRODUCT
========================= */

func CreateProduct(store DocumentStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/products"
		defer handlePanic(c, route)

		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorDetail(err))
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id, err := store.CreateDocument(ctx, database.ProductCollection, buildProduct(req))
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		log.Printf("[%s] product created id=%s request=%s", route, id, middleware.GetRequestID(c))
		c.JSON(http.StatusOK, id)
	}
}

func buildProduct(req createProductRequest) models.Product {
	inStock := true
	if req.InStock != nil {
		inStock = *req.InStock
	}

	rating := 0.0
	if req.Rating != nil {
		rating = *req.Rating
	}

	images := req.Images
	if images == nil {
		images = []string{}
	}

	return models.Product{
		Title:       req.Title,
		Description: req.Description,
		Price:       *req.Price,
		Category:    req.Category,
		Images:      images,
		InStock:     inStock,
		Rating:      rating,
	}
}
