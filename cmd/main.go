package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	_ "github.com/sarrasouelmia/ArenaNuitDeL-info/docs"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/handler"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/repository"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/router"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/service"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/internal/ws"
	"github.com/sarrasouelmia/ArenaNuitDeL-info/pkg/config"
)

// @title Arena Scoreboard API
// @version 1.0
// @description Live competition scoring dashboard backend
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	// Configure logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to database
	pool, err := config.MustInitDB(context.Background(), *cfg)
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := repository.Migrate(context.Background(), pool); err != nil {
		slog.Error("failed to apply schema", "error", err)
		os.Exit(1)
	}

	slog.Info("successfully connected to database")

	// Broadcast hub for connected dashboard viewers
	hub := ws.NewHub()
	defer hub.Close()

	// Initialize repositories
	teamRepo := repository.NewTeamRepository(pool)
	scoreRepo := repository.NewScoreRepository(pool)
	eventRepo := repository.NewEventRepository(pool)

	// Initialize validator
	validate := validator.New()

	// Initialize services
	authService := service.NewAuthService(cfg.AdminUser, cfg.AdminPassword, cfg.JWTSecret)
	teamService := service.NewTeamService(teamRepo, hub)
	scoreService := service.NewScoreService(scoreRepo, hub)
	leaderboardService := service.NewLeaderboardService(teamRepo)
	eventService := service.NewEventService(eventRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, validate)
	teamHandler := handler.NewTeamHandler(teamService, validate)
	scoreHandler := handler.NewScoreHandler(scoreService, validate)
	leaderboardHandler := handler.NewLeaderboardHandler(leaderboardService)
	eventHandler := handler.NewEventHandler(eventService)
	healthHandler := handler.NewHealthHandler()

	slog.Info("successfully configured services and handlers")

	// Setup router
	r := router.SetupRouter(
		authHandler,
		teamHandler,
		scoreHandler,
		leaderboardHandler,
		eventHandler,
		healthHandler,
		hub,
		authService,
	)

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	hub.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server stopped")
}
