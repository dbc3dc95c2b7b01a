package main

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"doctor-appointment-server/internal/config"
	"doctor-appointment-server/internal/routes"
	"doctor-appointment-server/internal/session"
	"doctor-appointment-server/internal/storage"
)

func main() {
	// Load environment variables; a missing .env is fine, env vars may be
	// set directly
	_ = godotenv.Load()

	// Initialize configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Select the persistence backend
	var backend storage.Backend
	switch cfg.StorageDriver {
	case config.DriverMemory:
		backend = storage.NewMemoryBackend()
	default:
		backend, err = storage.NewFileBackend(cfg.DataDir)
		if err != nil {
			log.Fatalf("Error initializing file storage: %v", err)
		}
	}
	store := storage.NewStore(backend)

	// Session store lives for the whole process; entries expire after the
	// configured TTL
	sessions := session.NewStore(time.Duration(cfg.SessionTTLHours) * time.Hour)

	// Initialize Gin router
	router := gin.Default()

	// Configure CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	router.Use(cors.New(corsConfig))

	// Set up routes
	routes.SetupRoutes(router, store, sessions, cfg)

	// Start server
	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Printf("Server running on port %s\n", cfg.Port)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
