package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/masterdu/masterdu-backend/config"
	"github.com/masterdu/masterdu-backend/internal/controller"
	"github.com/masterdu/masterdu-backend/internal/middleware"
	"github.com/masterdu/masterdu-backend/internal/repository"
	"github.com/masterdu/masterdu-backend/internal/router"
	"github.com/masterdu/masterdu-backend/internal/service"
	"github.com/masterdu/masterdu-backend/internal/storage"
	"github.com/masterdu/masterdu-backend/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	// Initialize logger
	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting MASTER DU Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"data_dir":    cfg.Store.DataDir,
		"log_level":   logLevel,
	})

	// Initialize repositories over the flat-file collections
	blogRepo := repository.NewBlogRepository(cfg.Store.DataDir)
	serviceRepo := repository.NewServiceRepository(cfg.Store.DataDir)
	courseRepo := repository.NewCourseRepository(cfg.Store.DataDir)
	membershipRepo := repository.NewMembershipRepository(cfg.Store.DataDir)
	productRepo := repository.NewProductRepository(cfg.Store.DataDir)

	// Select the image storage driver
	var imageStorage storage.ImageStorage
	switch cfg.Store.Driver {
	case "s3":
		imageStorage = storage.NewS3Storage(
			cfg.S3.Region,
			cfg.S3.Bucket,
			cfg.S3.AccessKeyID,
			cfg.S3.SecretAccessKey,
			cfg.S3.BaseURL,
		)
		logger.Info("Using S3 image storage", map[string]interface{}{
			"bucket": cfg.S3.Bucket,
			"region": cfg.S3.Region,
		})
	default:
		imageStorage = storage.NewLocalStorage(cfg.Store.UploadDir)
		logger.Info("Using local image storage", map[string]interface{}{
			"dir": cfg.Store.UploadDir,
		})
	}

	// Initialize services
	authService, err := service.NewAuthService(cfg.Admin, cfg.JWT)
	if err != nil {
		logger.Fatal("Failed to initialize auth service", err)
	}
	blogService := service.NewBlogService(blogRepo)
	catalogService := service.NewCatalogService(serviceRepo, courseRepo)
	productService := service.NewProductService(productRepo)
	membershipService := service.NewMembershipService(membershipRepo)
	cartService := service.NewCartService(cfg.Contact.WhatsAppNumber)

	var generator service.ReplyGenerator
	if cfg.Gemini.APIKey != "" {
		generator, err = service.NewGeminiGenerator(context.Background(), cfg.Gemini.APIKey, cfg.Gemini.Model)
		if err != nil {
			logger.Fatal("Failed to initialize Gemini client", err)
		}
	} else {
		generator = service.NewDisabledGenerator()
		logger.Warn("GEMINI_API_KEY not set, chat will answer with the fallback message")
	}
	chatService := service.NewChatService(generator, serviceRepo, courseRepo)

	// Initialize controllers
	authController := controller.NewAuthController(authService)
	blogController := controller.NewBlogController(blogService)
	catalogController := controller.NewCatalogController(catalogService)
	productController := controller.NewProductController(productService)
	membershipController := controller.NewMembershipController(membershipService)
	paymentController := controller.NewPaymentController(membershipService, cfg.Contact)
	cartController := controller.NewCartController(cartService)
	chatController := controller.NewChatController(chatService)
	uploadController := controller.NewUploadController(imageStorage)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret)

	// Setup router
	r := router.NewRouter(
		authController,
		blogController,
		catalogController,
		productController,
		membershipController,
		paymentController,
		cartController,
		chatController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	// Start server in a goroutine
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server started successfully", map[string]interface{}{
			"address": addr,
			"pid":     os.Getpid(),
		})
		if err := engine.Run(addr); err != nil {
			logger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
