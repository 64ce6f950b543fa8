package main

import (
	"log"
	"net/http"
	"os"

	"curries-burger-api/cart"
	"curries-burger-api/checkout"
	"curries-burger-api/config"
	"curries-burger-api/handlers"
	"curries-burger-api/repository"
	"curries-burger-api/routes"
	"curries-burger-api/store"
	"curries-burger-api/tracker"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	mode := os.Getenv("GIN_MODE")
	if mode == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Open the record store and seed defaults
	st, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Fatal("Failed to open record store:", err)
	}
	if err := st.Seed(); err != nil {
		log.Fatal("Failed to seed record store:", err)
	}

	// Wire the services
	repo := repository.New(st)
	sim := checkout.Simulator{
		VerifyAfter:    cfg.GatewayVerifyAfter,
		AuthorizeAfter: cfg.GatewayAuthorizeAfter,
		CompleteAfter:  cfg.GatewayCompleteAfter,
	}
	h := handlers.New(
		repo,
		cart.NewStore(),
		checkout.NewService(repo, sim, cfg.TaxRate, cfg.DeliveryFee),
		tracker.New(repo),
		cfg.JWTSecret,
	)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization, X-Session-ID")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Curries & Burger Storefront API",
			"version": "1.0.0",
		})
	})

	// Welcome
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "🍔 Welcome to the Curries & Burger Storefront API",
			"docs":    "/api/state-machine",
			"health":  "/health",
			"menu":    "/api/menu",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, h)

	// Start server
	log.Printf("🚀 Server running on http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
