package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/labstack/echo/v4"

	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/caching"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/config"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/handlers"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/jobs/background"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/repositories"
	"github.com/rohan200218/Sanghamitra-SmartBillS/internal/services"
	"github.com/rohan200218/Sanghamitra-SmartBillS/pkg/database"
)

const version = "1.0.0"

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Cache service
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// MinIO service for invoice document exports
	minioSvc, err := services.NewMinioService(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	if err := minioSvc.EnsureBucketExists(context.Background(), cfg.MinioBucket); err != nil {
		log.Printf("WARN: could not ensure invoice bucket %q: %v", cfg.MinioBucket, err)
	}

	// Repositories and services
	orderRepo := repositories.NewOrderRepo(pool)
	orderSvc := services.NewOrderService(orderRepo, cacheSvc)

	// Handlers
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	invoiceHandlers := handlers.NewInvoiceHandlers(orderSvc, minioSvc, cfg.MinioBucket, cfg.TaxRatePercent())
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background cache warming
	scheduler, err := background.NewJobScheduler(orderSvc)
	if err != nil {
		log.Fatalf("Failed to create job scheduler: %v", err)
	}
	scheduler.Start()
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("WARN: scheduler shutdown: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()

	// Global middleware; CORS stays open for any origin, the billing form
	// is served from an arbitrary local file or host.
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// Order gateway
	e.POST("/save-order", orderHandlers.SaveOrder)
	e.GET("/get-orders", orderHandlers.GetOrders)
	e.GET("/get-order/:orderId", orderHandlers.GetOrderItems)
	e.GET("/get-order-details/:orderId", orderHandlers.GetOrderDetails)

	// Invoice rendering and export
	e.GET("/invoices/:orderId", invoiceHandlers.GetInvoice)
	e.POST("/invoices/:orderId/document", invoiceHandlers.ExportInvoice)

	log.Printf("🚀 SmartBillS server v%s starting on port %d", version, cfg.Port)

	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
