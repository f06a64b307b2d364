package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"ems-gateway/internal/adapters/http/middleware"
	"ems-gateway/internal/adapters/http/routes"
	"ems-gateway/internal/adapters/persistence/models"
	"ems-gateway/internal/adapters/persistence/repositories"
	"ems-gateway/internal/adapters/upstream"
	"ems-gateway/internal/config"
	"ems-gateway/internal/core/services"
	"ems-gateway/internal/pkg/metrics"

	"github.com/gofiber/fiber/v2"

	_ "ems-gateway/docs" // Swagger docs
)

// @title EMS Admin Gateway API
// @version 1.0
// @description Server-side gateway for the employee management system admin panels
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@ems.example.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to the session database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates the sessions table if not exists)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Prometheus collectors plus the standalone /metrics listener
	metrics.Init()
	if cfg.Metrics.Enabled {
		go metrics.Serve(cfg.Metrics.Addr)
	}

	// Session maintenance jobs (expiry sweep, token revalidation)
	cronService := services.NewCronService(
		repositories.NewSessionRepository(db),
		upstream.New(cfg.Upstream),
		cfg,
	)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "EMS Admin Gateway v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
