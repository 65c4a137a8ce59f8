package main

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/theleywin/Backend-Dev-Connect/src/config"
	"github.com/theleywin/Backend-Dev-Connect/src/controllers"
	"github.com/theleywin/Backend-Dev-Connect/src/github"
	"github.com/theleywin/Backend-Dev-Connect/src/lib"
	"github.com/theleywin/Backend-Dev-Connect/src/middleware"
	"github.com/theleywin/Backend-Dev-Connect/src/profiles"
	"github.com/theleywin/Backend-Dev-Connect/src/routes"
	"github.com/theleywin/Backend-Dev-Connect/src/store"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := lib.NewZapLogger(cfg.App.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
	if err != nil {
		logger.Fatal("failed to connect to MongoDB", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		logger.Fatal("failed to ping MongoDB", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", cfg.Mongo.Database))

	db := client.Database(cfg.Mongo.Database)

	profileStore := store.NewMongoProfileStore(db)
	postStore := store.NewMongoPostStore(db)
	userStore := store.NewMongoUserStore(db)

	if err := profileStore.EnsureIndexes(ctx); err != nil {
		logger.Fatal("failed to create indexes", err)
	}

	svc := profiles.NewService(profileStore, postStore, userStore, logger)
	ghClient := github.NewClient(cfg.Github.ClientID, cfg.Github.ClientSecret, cfg.Github.Timeout, logger)

	profileController := controllers.NewProfileController(svc, ghClient, logger)
	authController := controllers.NewAuthController(userStore, cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan, logger)
	protect := middleware.ProtectRoute(cfg.Auth.JWTSecret, userStore)

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	routes.AuthRoutes(app, authController, protect)
	routes.ProfileRoutes(app, profileController, protect)

	logger.Info("server is running", zap.String("port", cfg.App.Port))
	if err := app.Listen(":" + cfg.App.Port); err != nil {
		logger.Fatal("server stopped", err)
	}
}
