package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"outlet-backend/internal/config"
	"outlet-backend/internal/database"
	"outlet-backend/internal/events"
	"outlet-backend/internal/handlers"
	"outlet-backend/internal/middleware"
)

func main() {
	cfg := config.Load()

	// A failed connection is tolerated: the server still starts so the
	// diagnostics endpoint can report the missing storage.
	var db *mongo.Database
	client, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Println("⚠️ mongodb connection failed:", err)
	} else {
		db = client.Database(cfg.DatabaseName)
		log.Println("MongoDB connected to:", db.Name())

		if err := database.EnsureProductIndexes(db); err != nil {
			log.Printf("⚠️ product index warning: %v", err)
		}
		if err := database.EnsureOrderIndexes(db); err != nil {
			log.Printf("⚠️ order index warning: %v", err)
		}
	}

	store := database.NewStore(db)

	var orderEvents handlers.OrderEventPublisher
	if cfg.AMQPURL != "" {
		publisher, err := events.NewPublisher(cfg.AMQPURL)
		if err != nil {
			log.Println("⚠️ rabbitmq connection failed:", err)
		} else {
			defer publisher.Close()
			orderEvents = publisher
		}
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())

	r.GET("/", handlers.Home())
	r.GET("/test", handlers.TestDatabase(store))

	api := r.Group("/api")
	{
		api.GET("/products", handlers.GetProducts(store))
		api.POST("/products", handlers.CreateProduct(store))
		api.POST("/orders", handlers.CreateOrder(store, orderEvents))
	}

	r.Run(":" + cfg.Port)
}
