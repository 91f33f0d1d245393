package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/DaveedGangi/taskmanagerBackend/internal/auth"
	"github.com/DaveedGangi/taskmanagerBackend/internal/config"
	"github.com/DaveedGangi/taskmanagerBackend/internal/database"
	"github.com/DaveedGangi/taskmanagerBackend/internal/handlers"
	"github.com/DaveedGangi/taskmanagerBackend/internal/middleware"
	"github.com/DaveedGangi/taskmanagerBackend/internal/repository"
	"github.com/DaveedGangi/taskmanagerBackend/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	if err := database.AddIndexes(db); err != nil {
		log.Fatalf("Failed to add indexes: %v", err)
	}

	// Initialize auth primitives
	hasher := auth.NewHasher(cfg.BcryptCost)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	authService := services.NewAuthService(userRepo, hasher, tokens)
	taskService := services.NewTaskService(taskRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService)

	// Initialize Gin router
	r := gin.Default()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Task Manager API is running",
		})
	})

	// Auth routes (public)
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)

	// Task routes (protected)
	protected := r.Group("/")
	protected.Use(middleware.RequireAuth(tokens))
	{
		protected.POST("/task", taskHandler.CreateTask)
		protected.GET("/task", taskHandler.ListTasks)
		protected.GET("/getTask/:id", taskHandler.GetTask)
		protected.PUT("/task/:id", taskHandler.UpdateTask)
		protected.DELETE("/task/:id", taskHandler.DeleteTask)
	}

	// Start server
	log.Printf("Server starting on :%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
