package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"

	"github.com/adityagv/homework-hub/internal/config"
	"github.com/adityagv/homework-hub/internal/constants"
	"github.com/adityagv/homework-hub/internal/database"
	"github.com/adityagv/homework-hub/internal/handlers"
	"github.com/adityagv/homework-hub/internal/repository"
	"github.com/adityagv/homework-hub/internal/services"
	"github.com/adityagv/homework-hub/internal/storage"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Wire the persistence loop: durable slot -> repository -> service
	store := storage.NewAdapter(database.GetDB(), cfg.SlotKey)
	repo := repository.NewAssignmentRepository()
	service := services.NewAssignmentService(repo, store)
	service.LoadFromStorage()

	// Initialize Gin router
	r := gin.Default()
	handlers.LoadTemplates(r)

	// Session middleware carries one-shot flash notices between redirects.
	// Cookie store: single-user local process, nothing worth a session server.
	sessionStore := cookie.NewStore([]byte(cfg.SessionSecret))
	sessionStore.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		SameSite: 2, // SameSite=Lax
	})
	r.Use(sessions.Sessions(constants.SessionName, sessionStore))

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Homework Hub is running",
		})
	})

	// Pages and API
	handler := handlers.NewAssignmentHandler(service)
	handler.Register(r)

	// Start server
	log.Printf("Server starting on %s", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
