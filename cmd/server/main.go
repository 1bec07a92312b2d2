package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Akashnaii/Breadbox/config"
	"github.com/Akashnaii/Breadbox/internal/app/controller"
	"github.com/Akashnaii/Breadbox/internal/app/model"
	"github.com/Akashnaii/Breadbox/internal/app/repository"
	"github.com/Akashnaii/Breadbox/internal/app/service"
	"github.com/Akashnaii/Breadbox/internal/db"
	"github.com/Akashnaii/Breadbox/internal/mail"
	"github.com/Akashnaii/Breadbox/internal/middleware"
	"github.com/Akashnaii/Breadbox/internal/router"
	"github.com/Akashnaii/Breadbox/internal/scheduler"
	"github.com/Akashnaii/Breadbox/internal/storage"
	"github.com/Akashnaii/Breadbox/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}

	logLevel := "info"
	if cfg.Server.Environment == "development" {
		logLevel = "debug"
	}
	logger.Initialize(logger.Config{
		Level:       logLevel,
		Format:      "console", // Use "json" for production
		EnableColor: true,
	})

	logger.Info("Starting BreadBox Backend Server", map[string]interface{}{
		"environment": cfg.Server.Environment,
		"port":        cfg.Server.Port,
		"log_level":   logLevel,
	})

	if err := db.Initialize(&cfg.Database); err != nil {
		logger.Fatal("Failed to initialize database", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("Failed to close database connection", err)
		}
	}()

	if err := db.Migrate(); err != nil {
		logger.Fatal("Failed to run migrations", err)
	}

	// Repositories
	userRepo := repository.NewUserRepository(db.GetDB())
	vendorRepo := repository.NewVendorRepository(db.GetDB())
	restaurantRepo := repository.NewRestaurantRepository(db.GetDB())
	itemRepo := repository.NewItemRepository(db.GetDB())
	packageRepo := repository.NewPackageRepository(db.GetDB())

	// Outbound email
	notifier := mail.NewSMTPNotifier(cfg.SMTP)

	// Services
	userAccounts := service.NewAccountService[*model.User](
		userRepo,
		notifier,
		cfg.JWT.Secret,
		cfg.JWT.TokenExpiry,
		"User",
	)
	vendorAccounts := service.NewAccountService[*model.Vendor](
		vendorRepo,
		notifier,
		cfg.JWT.Secret,
		cfg.JWT.TokenExpiry,
		"Vendor",
	)
	restaurantService := service.NewRestaurantService(restaurantRepo)
	itemService := service.NewItemService(itemRepo)
	packageService := service.NewPackageService(packageRepo, itemRepo)

	// Object storage for image uploads
	s3Storage := storage.NewS3Storage(
		cfg.S3.Region,
		cfg.S3.Bucket,
		cfg.S3.AccessKeyID,
		cfg.S3.SecretAccessKey,
		cfg.S3.BaseURL,
	)

	// Controllers
	authController := controller.NewAuthController(userAccounts, vendorAccounts)
	vendorController := controller.NewVendorController(vendorAccounts)
	restaurantController := controller.NewRestaurantController(restaurantService)
	itemController := controller.NewItemController(itemService)
	packageController := controller.NewPackageController(packageService)
	uploadController := controller.NewUploadController(s3Storage)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWT.Secret, userRepo, vendorRepo)

	r := router.NewRouter(
		authController,
		vendorController,
		restaurantController,
		itemController,
		packageController,
		uploadController,
		authMiddleware,
		cfg,
	)
	engine := r.Setup()

	otpCleanup := scheduler.NewOTPCleanupScheduler(userRepo, vendorRepo)
	if err := otpCleanup.Start(); err != nil {
		logger.Fatal("Failed to start OTP cleanup scheduler", err)
	}
	defer otpCleanup.Stop()

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server gracefully...")
	logger.Info("Server stopped successfully")
}
