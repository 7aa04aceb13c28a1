package main

import (
	"log"
	"os"

	"case-management-api/config"
	"case-management-api/middleware"
	"case-management-api/routes"
	"case-management-api/store"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load .env file
	config.LoadEnv()

	// Configure log output (stdout + logs/case-api.log)
	logFile, logWriter := config.InitLogging()
	if logFile != nil {
		defer logFile.Close()
	}
	gin.DefaultWriter = logWriter

	// Set Gin mode
	ginMode := os.Getenv("GIN_MODE")
	if ginMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	router := gin.New()

	// Add logging middleware
	router.Use(gin.Logger())

	// Add recovery middleware
	router.Use(gin.Recovery())

	// Add security headers middleware
	router.Use(func(c *gin.Context) {
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// Add CORS middleware
	router.Use(middleware.CORSMiddleware())

	// In-memory store; all records are lost on restart
	db := store.New()

	// Setup routes
	routes.SetupRoutes(router, db)

	// Start server
	port := config.ServerPort()

	log.Printf("🚀 Server starting on port %s", port)
	log.Printf("🌐 CORS open, listening on all network interfaces")

	if err := router.Run(":" + port); err != nil {
		log.Fatal("❌ Failed to start server:", err)
	}
}
