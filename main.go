package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/aminul-islam01/bistro-boss-server/cache"
	"github.com/aminul-islam01/bistro-boss-server/config"
	"github.com/aminul-islam01/bistro-boss-server/payment"
	"github.com/aminul-islam01/bistro-boss-server/routes"
	"github.com/aminul-islam01/bistro-boss-server/store"
	"github.com/aminul-islam01/bistro-boss-server/token"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("failed to connect mongo:", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		log.Fatal("failed to ping mongo:", err)
	}
	log.Println("Connected to Mongo DB:", cfg.DBName)

	app := fiber.New()
	app.Use(logger.New())
	app.Use(cors.New())

	routes.Register(app, routes.Deps{
		Store:  store.New(client.Database(cfg.DBName)),
		Tokens: token.NewService(cfg.JWTSecret),
		Bridge: payment.NewStripeBridge(cfg.StripeKey),
		Cache:  cache.New(cfg.RedisAddr),
	})

	log.Println("HTTP server running on port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
