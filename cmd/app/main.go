package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/Ved-B18/ground-finder-pro/docs"

	"github.com/Ved-B18/ground-finder-pro/internal/config"
	"github.com/Ved-B18/ground-finder-pro/internal/db"
	"github.com/Ved-B18/ground-finder-pro/internal/email"
	"github.com/Ved-B18/ground-finder-pro/internal/logger"
	"github.com/Ved-B18/ground-finder-pro/internal/payment"
	"github.com/Ved-B18/ground-finder-pro/internal/server"
	"github.com/Ved-B18/ground-finder-pro/internal/storage"

	"github.com/redis/go-redis/v9"
)

// @title GroundBook API
// @version 1.0
// @description API for the venue booking marketplace.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {

	logger.Init()
	logger.Info("Starting GroundBook application")
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}

	logger.Info("Connecting to database...")
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connected")

	if err := db.RunMigrations(database, "migrations"); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	logger.Info("Migrations completed")

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	emailService := email.New(
		cfg.EmailFrom,
		cfg.EmailFromName,
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPUser,
		cfg.SMTPPass,
		cfg.RedisAddr,
	)
	defer emailService.Close()
	logger.Info("Email service initialized")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go emailService.Start(ctx)

	var storageService *storage.Service
	if cfg.S3Endpoint != "" {
		storageService, err = storage.New(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3UseSSL, cfg.S3PublicBaseURL)
		if err != nil {
			logger.Fatalf("Failed to connect to object storage: %v", err)
		}
		if err := storageService.EnsureBuckets(ctx); err != nil {
			logger.Fatalf("Failed to prepare buckets: %v", err)
		}
		logger.Info("Object storage initialized")
	} else {
		logger.Info("Object storage not configured, uploads disabled")
	}

	paymentProvider := payment.NewStripeProvider(cfg.StripeSecretKey)

	srv := server.New(database, rdb, cfg, emailService, storageService, paymentProvider)

	serverErrChan := make(chan error, 1)
	go func() {
		logger.Infof("Server starting on port %s", cfg.Port)
		if err := srv.Start(cfg.Port); err != nil && err != http.ErrServerClosed {
			serverErrChan <- err
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Infof("Received signal: %v", sig)
	case err := <-serverErrChan:
		logger.Errorf("Server error: %v", err)
	}

	logger.Info("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Error during server shutdown: %v", err)
	}

	logger.Info("Server stopped")
}
