package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"portfolio-backend/config"
	_ "portfolio-backend/docs" // Important for Swagger
	"portfolio-backend/internal/delivery/http/middleware"
	v1 "portfolio-backend/internal/delivery/http/v1"
	"portfolio-backend/internal/repository/mongodb"
	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/database"
	"portfolio-backend/pkg/email"
	"portfolio-backend/pkg/logger"
	"portfolio-backend/pkg/redis"
	"portfolio-backend/pkg/validation"
)

// @title           Aagam Shah Portfolio API
// @version         1.0.0
// @description     Blog and contact backend for the portfolio site.
// @host            localhost:8001
// @BasePath        /api
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting portfolio backend", "port", cfg.Port)

	if cfg.CORSWideOpen() {
		logger.Log.Warn("CORS allows every origin with credentials; set CORS_ORIGINS to restrict it")
	}

	// 3. Setup Database
	ctx := context.Background()
	db, err := database.NewMongoConnection(ctx, cfg.MongoURL, cfg.DBName, cfg.DBOperationTimeout)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.EnsureIndexes(ctx); err != nil {
		logger.Log.Warn("Failed to create indexes", "error", err)
	}

	// 4. Optional Redis for rate limiting
	redisClient, err := redis.NewClient(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	if err != nil {
		if !errors.Is(err, redis.ErrNotConfigured) {
			logger.Log.Warn("Redis unavailable, rate limiting in memory", "error", err)
		}
		redisClient = nil
	} else {
		defer redisClient.Close()
	}

	// 5. Setup Repositories
	blogRepo := mongodb.NewBlogRepository(db.DB, cfg.DBOperationTimeout)
	contactRepo := mongodb.NewContactRepository(db.DB, cfg.DBOperationTimeout)

	// 6. Setup Email Service
	emailService := email.NewEmailService(cfg)
	if !emailService.IsConfigured() {
		logger.Log.Warn("Email service not fully configured - contact notifications will be skipped")
	}
	dispatcher := usecase.NewNotificationDispatcher(emailService, cfg.SMTPTimeout)

	// 7. Setup UseCases
	validate := validation.NewValidator()
	blogUC := usecase.NewBlogUsecase(blogRepo, validate, cfg.DefaultAuthor, cfg.ListMaxLimit)
	contactUC := usecase.NewContactUsecase(contactRepo, dispatcher, validate, cfg.ListMaxLimit)
	healthUC := usecase.NewHealthUsecase(db, cfg.DBOperationTimeout)

	// 8. Setup Router
	limiter := middleware.NewRateLimiter(
		middleware.ContactRateLimitConfig(cfg.ContactRateLimit, time.Duration(cfg.ContactRateWindowSeconds)*time.Second),
		redisClient,
	)
	router := v1.NewRouter(v1.RouterDeps{
		BlogUC:      blogUC,
		ContactUC:   contactUC,
		HealthUC:    healthUC,
		RateLimiter: limiter,
		Config:      cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Log.Warn("Pending contact notifications abandoned", "error", err)
	}

	if err := db.Close(shutdownCtx); err != nil {
		logger.Log.Error("Failed to disconnect from MongoDB", "error", err)
	}

	logger.Log.Info("Server exiting")
}
