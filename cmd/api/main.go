package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"spendbook/internal/config"
	"spendbook/internal/database"
	"spendbook/internal/handlers"
	"spendbook/internal/logger"
	"spendbook/internal/middleware"
	"spendbook/internal/services"
	"spendbook/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom binding validations
	validator.Register()

	// Open the store selected by DB_DRIVER and bring the schema up to date
	dbManager, err := database.NewManager(appConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Initialize services
	db := dbManager.DB()
	userService := services.NewUserService(db)
	categoryService := services.NewCategoryService(db)
	recordService := services.NewRecordService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService)
	userHandler := handlers.NewUserHandler(userService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	recordHandler := handlers.NewRecordHandler(recordService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User routes
	users := protected.Group("/users")
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	// Category routes
	categories := protected.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.POST("", categoryHandler.CreateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	// Record routes
	records := protected.Group("/records")
	records.GET("", recordHandler.ListRecords)
	records.GET("/:id", recordHandler.GetRecord)
	records.POST("", recordHandler.CreateRecord)
	records.DELETE("/:id", recordHandler.DeleteRecord)

	log.Infof("Starting Spendbook backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
