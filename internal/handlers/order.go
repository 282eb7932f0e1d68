package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"outlet-backend/internal/database"
	"outlet-backend/internal/events"
	"outlet-backend/internal/middleware"
	"outlet-backend/internal/models"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderItemRequest struct {
	ProductID string   `json:"product_id" binding:"required"`
	Title     string   `json:"title" binding:"required"`
	Price     *float64 `json:"price" binding:"required,gte=0"`
	Quantity  *int     `json:"quantity" binding:"omitempty,gte=1"`
	Image     string   `json:"image"`
}

// createOrderRequest deliberately has no total_amount field: the total
// is computed server-side and never trusted from client input.
type createOrderRequest struct {
	CustomerName    string                   `json:"customer_name" binding:"required"`
	CustomerEmail   string                   `json:"customer_email" binding:"required,email"`
	CustomerPhone   string                   `json:"customer_phone"`
	ShippingAddress string                   `json:"shipping_address" binding:"required"`
	Items           []createOrderItemRequest `json:"items" binding:"required,dive"`
	Notes           string                   `json:"notes"`
}

/* =========================
   CREATE ORDER
========================= */

func CreateOrder(store DocumentStore, publisher OrderEventPublisher) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/orders"
		defer handlePanic(c, route)

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, bindingErrorDetail(err))
			return
		}

		order := buildOrder(req)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		id, err := store.CreateDocument(ctx, database.OrderCollection, order)
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, err.Error())
			return
		}

		if publisher != nil {
			ev := events.OrderCreated{
				OrderID:       id,
				CustomerEmail: order.CustomerEmail,
				TotalAmount:   order.TotalAmount,
				ItemCount:     len(order.Items),
			}
			if err := publisher.PublishOrderCreated(ctx, ev); err != nil {
				log.Printf("[%s] order event publish failed: %v", route, err)
			}
		}

		log.Printf("[%s] order created id=%s total=%.2f request=%s", route, id, order.TotalAmount, middleware.GetRequestID(c))
		c.JSON(http.StatusOK, id)
	}
}

// buildOrder assembles the order document, defaulting quantity to 1 and
// summing price × quantity over the items in insertion order.
func buildOrder(req createOrderRequest) models.Order {
	items := make([]models.OrderItem, 0, len(req.Items))
	total := 0.0

	for _, item := range req.Items {
		quantity := 1
		if item.Quantity != nil {
			quantity = *item.Quantity
		}

		items = append(items, models.OrderItem{
			ProductID: item.ProductID,
			Title:     item.Title,
			Price:     *item.Price,
			Quantity:  quantity,
			Image:     item.Image,
		})
		total += *item.Price * float64(quantity)
	}

	return models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		ShippingAddress: req.ShippingAddress,
		Items:           items,
		Notes:           req.Notes,
		TotalAmount:     total,
	}
}
