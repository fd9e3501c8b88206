package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "teammate-feedback/docs" // This is for Swagger
	"teammate-feedback/internal/auth"
	"teammate-feedback/internal/config"
	"teammate-feedback/internal/database"
	"teammate-feedback/internal/handlers"
	"teammate-feedback/internal/logger"
	"teammate-feedback/internal/middleware"
	"teammate-feedback/internal/repository"
	"teammate-feedback/internal/service"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Teammate Feedback API
// @version 1.0
// @description Backend API for capturing structured peer feedback on teammates

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:3000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
		Env:   cfg.App.Env,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", cfg.Log.Level,
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		err := db.Close()
		if err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	teammateRepo := repository.NewTeammateRepository(db.DB)
	catalogRepo := repository.NewCatalogRepository(db.DB)
	reviewRepo := repository.NewReviewRepository(db.DB)

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	teammateService := service.NewTeammateService(teammateRepo)
	feedbackService := service.NewFeedbackService(db.DB, teammateRepo, catalogRepo, reviewRepo)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	// Initialize handlers
	teammateHandler := handlers.NewTeammateHandler(teammateService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	healthHandler := handlers.NewHealthHandler(db, cfg.App.Env)

	protected := func(h http.HandlerFunc) http.Handler {
		return authMw.Authenticate(middleware.SanitizeBody(h))
	}

	// Setup router
	mux := http.NewServeMux()

	// Teammate routes
	mux.Handle("POST /api/teammates", protected(teammateHandler.Create))
	mux.Handle("GET /api/teammates", protected(teammateHandler.List))

	// Feedback routes
	mux.Handle("GET /api/feedback/{teammateId}", protected(feedbackHandler.Get))
	mux.Handle("POST /api/feedback/{teammateId}", protected(feedbackHandler.Submit))
	mux.Handle("PUT /api/feedback/{teammateId}/{reviewId}", protected(feedbackHandler.Update))
	mux.Handle("DELETE /api/feedback/{teammateId}/{reviewId}", protected(feedbackHandler.Delete))

	// Health check endpoint
	mux.HandleFunc("GET /health", healthHandler.Check)

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.Logging(
		middleware.Recovery(cfg.App.Env)(
			middleware.SecurityHeaders(
				corsMw.Handler(
					rateLimiter.Limit(mux),
				),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
