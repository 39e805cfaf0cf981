package main

import (
	"context"
	"log"

	"wedding-rsvp/config"
	"wedding-rsvp/internal/database"
	"wedding-rsvp/internal/handler"
	"wedding-rsvp/internal/repository"
	"wedding-rsvp/internal/service"
	"wedding-rsvp/internal/web"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer pool.Close()

	// Schema is ensured once at startup; request handlers never deal
	// with a missing table themselves.
	if err := database.EnsureSchema(context.Background(), pool); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	rsvpRepo := repository.NewRSVPRepository(pool)
	rsvpService := service.NewRSVPService(rsvpRepo)
	rsvpHandler := handler.NewRSVPHandler(rsvpService)
	schemaHandler := handler.NewSchemaHandler(pool)

	router := gin.New()
	router.Use(handler.RequestLogger(), gin.Recovery())

	rsvpHandler.RegisterRoutes(router)
	schemaHandler.RegisterRoutes(router)
	web.RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
