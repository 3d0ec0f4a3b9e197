package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/contractorhq/paintdesk/internal/api"
	"github.com/contractorhq/paintdesk/internal/db"
	"github.com/contractorhq/paintdesk/internal/logging"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	log.SetOutput(os.Stdout)

	log.Printf("Paintdesk API starting (GIT_SHA=%s BUILD_TIME=%s)", os.Getenv("GIT_SHA"), os.Getenv("BUILD_TIME"))

	// Initialize database connection (non-fatal; allow process to start for /live)
	database, err := db.NewDatabase()
	if err != nil {
		log.Printf("[WARN] Database initialization failed at startup: %v", err)
	}
	if database != nil {
		defer database.Close()
	}

	handler := api.NewHandler(database)
	router := setupRouter(handler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8001"
	}

	// Set up graceful shutdown
	go func() {
		log.Printf("Starting server on port %s", port)
		if err := router.Run(":" + port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

func setupRouter(handler *api.Handler) *gin.Engine {
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(logging.JSONLogger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	// Health and readiness endpoints
	router.GET("/live", func(c *gin.Context) { c.Status(200) })
	router.GET("/ready", handler.Health)

	apiGroup := router.Group("/api")
	{
		apiGroup.GET("/health", handler.Health)

		apiGroup.GET("/sites", handler.GetSites)
		apiGroup.POST("/sites", handler.CreateSite)
		apiGroup.PUT("/sites/:id", handler.UpdateSite)
		apiGroup.DELETE("/sites/:id", handler.DeleteSite)

		apiGroup.GET("/materials", handler.GetMaterials)
		apiGroup.POST("/materials", handler.CreateMaterial)
		apiGroup.PUT("/materials/:id", handler.UpdateMaterial)
		apiGroup.DELETE("/materials/:id", handler.DeleteMaterial)

		apiGroup.GET("/labours", handler.GetLabours)
		apiGroup.POST("/labours", handler.CreateLabour)
		apiGroup.PUT("/labours/:id", handler.UpdateLabour)
		apiGroup.DELETE("/labours/:id", handler.DeleteLabour)

		apiGroup.GET("/site-logs", handler.GetSiteLogs)
		apiGroup.POST("/site-logs", handler.CreateSiteLog)
		apiGroup.PUT("/site-logs/:id", handler.UpdateSiteLog)
		apiGroup.DELETE("/site-logs/:id", handler.DeleteSiteLog)

		apiGroup.GET("/overheads", handler.GetOverheads)
		apiGroup.POST("/overheads", handler.CreateOverhead)
		apiGroup.PUT("/overheads/:id", handler.UpdateOverhead)
		apiGroup.DELETE("/overheads/:id", handler.DeleteOverhead)

		apiGroup.GET("/reports/site/:site_id", handler.GetSiteReport)
		apiGroup.GET("/reports/inventory", handler.GetInventoryReport)
		apiGroup.GET("/reports/daily", handler.GetDailyReport)

		apiGroup.GET("/export/site/:site_id", handler.ExportSiteReport)
		apiGroup.GET("/export/inventory", handler.ExportInventoryReport)
	}

	// Root endpoint for basic info
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "paintdesk-api",
			"version": "1.0.0",
			"status":  "running",
		})
	})

	return router
}

// corsMiddleware adds CORS headers to allow cross-origin requests
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
