package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"listinggen/internal/config"
	"listinggen/internal/handler"
	"listinggen/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Print version info
	log.Printf("Listing Copy Generator")
	log.Printf("Version: %s", Version)
	log.Printf("Build Time: %s", BuildTime)
	log.Printf("Git Commit: %s", GitCommit)
	log.Println("")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Initialize the completion client
	groqClient := service.NewGroqClient(&cfg.Groq)
	if cfg.Groq.Enabled {
		log.Printf("✅ Groq client initialized")
		log.Printf("   - API Base: %s", cfg.Groq.APIBase)
		log.Printf("   - Model: %s", cfg.Groq.Model)
		log.Printf("   - Timeout: %ds", cfg.Groq.Timeout)
		log.Printf("   - Retry attempts: %d", cfg.Groq.RetryAttempts)
	} else {
		log.Println("⚠️  No server-side GROQ_API_KEY configured")
		log.Println("   Requests without an X-Api-Key header will use template generation")
	}

	// Initialize services
	generator := service.NewGenerator(groqClient, cfg.Groq.EnhanceTokens)
	sessionStore := service.NewSessionStore()
	sessionService := service.NewSessionService(sessionStore, generator)
	exporter := service.NewExporter()
	importer := service.NewImporter(cfg.Import.MaxRows)

	log.Println("✅ Services initialized")

	// Initialize handlers
	sessionHandler := handler.NewSessionHandler(sessionService)
	generateHandler := handler.NewGenerateHandler(sessionService, groqClient)
	exportHandler := handler.NewExportHandler(sessionService, exporter)
	importHandler := handler.NewImportHandler(importer)

	// Setup Gin router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(cfg.Server.AllowedOrigins, ",")
	corsConfig.AllowMethods = strings.Split(cfg.Server.AllowedMethods, ",")
	corsConfig.AllowHeaders = strings.Split(cfg.Server.AllowedHeaders, ",")
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":     "healthy",
			"service":    "listing-copy-generator",
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	apiV1 := router.Group("/api/v1")
	{
		// Session lifecycle
		apiV1.POST("/sessions", sessionHandler.Create)
		apiV1.GET("/sessions/:id", sessionHandler.Get)
		apiV1.DELETE("/sessions/:id", sessionHandler.Clear)

		// Generation actions
		apiV1.POST("/sessions/:id/generate", generateHandler.Generate)
		apiV1.POST("/sessions/:id/regenerate", generateHandler.Regenerate)
		apiV1.POST("/sessions/:id/enhance", generateHandler.Enhance)
		apiV1.PUT("/sessions/:id/enhanced", generateHandler.UpdateEnhanced)

		// Export
		apiV1.POST("/sessions/:id/export", exportHandler.Export)

		// Bulk import
		apiV1.POST("/import", importHandler.Import)

		// Connection probe
		apiV1.POST("/connection/test", generateHandler.TestConnection)
	}

	// Start server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("🚀 Starting server on %s", addr)
	log.Printf("📝 API: http://localhost:%d/api/v1", cfg.Server.Port)

	go func() {
		if err := router.Run(addr); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	log.Println("✅ Server stopped")
}
