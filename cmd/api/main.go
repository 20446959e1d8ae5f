// Package main is the entry point for the Study Cards API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/study-cards/backend/config"
	"github.com/study-cards/backend/internal/application/usecase/auth"
	"github.com/study-cards/backend/internal/application/usecase/card"
	"github.com/study-cards/backend/internal/application/usecase/report"
	"github.com/study-cards/backend/internal/infra/db"
	"github.com/study-cards/backend/internal/infra/server/router"
	"github.com/study-cards/backend/internal/integration/adapters"
	"github.com/study-cards/backend/internal/integration/entrypoint/controller"
	"github.com/study-cards/backend/internal/integration/entrypoint/middleware"
	"github.com/study-cards/backend/internal/integration/persistence"
	"github.com/study-cards/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()

	slog.Info("Starting Study Cards API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	var database *db.Database
	var dbHealthChecker func() bool

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Warn("Database connection failed, running without database",
			"error", err,
		)
		dbHealthChecker = func() bool { return false }
	} else {
		if err := database.AutoMigrate(
			&model.UserModel{},
			&model.RefreshTokenModel{},
			&model.StudyCardModel{},
		); err != nil {
			slog.Error("Failed to run database migrations", "error", err)
			os.Exit(1)
		}
		slog.Info("Database migrations completed successfully")

		dbHealthChecker = database.HealthCheck
		defer func() {
			if err := database.Close(); err != nil {
				slog.Error("Failed to close database connection", "error", err)
			}
		}()
	}

	healthController := controller.NewHealthController(dbHealthChecker)

	var authController *controller.AuthController
	var cardController *controller.CardController
	var reportController *controller.ReportController
	var loginRateLimiter *middleware.RateLimiter
	var authMiddleware *middleware.AuthMiddleware
	var reportKeyMiddleware *middleware.ReportKeyMiddleware

	if database != nil {
		// Optional redis client for presigned URL caching
		var redisClient *redis.Client
		if cfg.Redis.URL != "" {
			redisClient = redis.NewClient(&redis.Options{
				Addr:     cfg.Redis.URL,
				Password: cfg.Redis.Password,
				DB:       cfg.Redis.DB,
			})
			if err := redisClient.Ping(context.Background()).Err(); err != nil {
				slog.Warn("Redis connection failed, URL caching disabled", "error", err)
				redisClient = nil
			} else {
				slog.Info("Redis URL cache enabled", "ttl", cfg.Storage.URLCacheTTL)
			}
		}

		// Object storage
		storageService, err := adapters.NewStorageService(cfg.Storage, redisClient)
		if err != nil {
			slog.Error("Failed to initialize object storage", "error", err)
			os.Exit(1)
		}
		if err := adapters.EnsureBucket(context.Background(), storageService); err != nil {
			slog.Warn("Failed to ensure storage bucket, uploads may fail", "error", err)
		}

		// Repositories
		userRepo := persistence.NewUserRepository(database.DB())
		tokenRepo := persistence.NewTokenRepository(database.DB())
		cardRepo := persistence.NewCardRepository(database.DB())
		reportRepo := persistence.NewReportRepository(database.DB())

		// Services
		passwordService := adapters.NewPasswordService()
		tokenService := adapters.NewTokenService(cfg.JWT.Secret, tokenRepo)

		// Auth use cases
		registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
		loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
		refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
		logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

		// Card use cases
		createCardUseCase := card.NewCreateCardUseCase(cardRepo)
		listCardsUseCase := card.NewListCardsUseCase(cardRepo)
		getCardUseCase := card.NewGetCardUseCase(cardRepo)
		updateCardUseCase := card.NewUpdateCardUseCase(cardRepo)
		deleteCardUseCase := card.NewDeleteCardUseCase(cardRepo, storageService)
		attachFileUseCase := card.NewAttachFileUseCase(cardRepo, storageService)
		getAttachmentURLUseCase := card.NewGetAttachmentURLUseCase(cardRepo, storageService)

		// Reporting use cases
		getReportUseCase := report.NewGetReportUseCase(reportRepo)
		getHistoryUseCase := report.NewGetHistoryUseCase(reportRepo)

		authController = controller.NewAuthController(
			registerUseCase,
			loginUseCase,
			refreshTokenUseCase,
			logoutUseCase,
		)

		cardController = controller.NewCardController(
			createCardUseCase,
			listCardsUseCase,
			getCardUseCase,
			updateCardUseCase,
			deleteCardUseCase,
			attachFileUseCase,
			getAttachmentURLUseCase,
		)

		reportController = controller.NewReportController(
			getReportUseCase,
			getHistoryUseCase,
			cfg.Report,
		)

		loginRateLimiter = middleware.NewRateLimiter()
		authMiddleware = middleware.NewAuthMiddleware(tokenService)
		reportKeyMiddleware = middleware.NewReportKeyMiddleware(cfg.Report.APIKey)

		if cfg.Report.APIKey == "" {
			slog.Warn("REPORT_API_KEY is not set; reporting endpoints are UNAUTHENTICATED and open to any caller")
		}

		slog.Info("Card, auth and reporting systems initialized successfully")
	} else {
		slog.Warn("API systems not initialized due to missing database connection")
	}

	// Setup router
	r := router.NewRouter(
		healthController,
		authController,
		cardController,
		reportController,
		loginRateLimiter,
		authMiddleware,
		reportKeyMiddleware,
	)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
