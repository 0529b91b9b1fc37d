// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/socialive/event-catalog/internal/config"
	"github.com/socialive/event-catalog/internal/database"
	"github.com/socialive/event-catalog/internal/handler"
	"github.com/socialive/event-catalog/internal/repository"
	"github.com/socialive/event-catalog/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		zap.NewExample().Fatal("config", zap.Error(err))
	}

	log := newLogger(cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	// ── 1. Connect to MongoDB ─────────────────────────────────────────────
	client, err := database.Connect(ctx, cfg.MongoDB)
	if err != nil {
		log.Fatal("database", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(ctx) }()

	db := client.Database(cfg.MongoDB.Database)
	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatal("indexes", zap.Error(err))
	}
	log.Info("connected to MongoDB", zap.String("database", cfg.MongoDB.Database))

	// ── 2. Wire up layers ────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(db)
	if cfg.Redis.Enabled() {
		cache := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		eventRepo = repository.NewCachedEventRepository(eventRepo, cache)
		log.Info("event cache enabled", zap.String("addr", cfg.Redis.Addr))
	}
	favoriteRepo := repository.NewFavoriteRepository(db)
	userRepo := repository.NewUserRepository(db)

	eventSvc := service.NewEventService(eventRepo)
	favoriteSvc := service.NewFavoriteService(favoriteRepo, eventRepo)
	recomSvc := service.NewRecommendationService(eventRepo, favoriteRepo)
	userSvc := service.NewUserService(userRepo)

	router := handler.NewRouter(
		log,
		handler.NewEventHandler(eventSvc, log),
		handler.NewFavoriteHandler(favoriteSvc, log),
		handler.NewRecommendationHandler(recomSvc, log),
		handler.NewUserHandler(userSvc, log),
	)

	// ── 3. Start server with graceful shutdown ───────────────────────────
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("graceful shutdown failed", zap.Error(err))
	}
	log.Info("server stopped")
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := cfg.Build()
	if err != nil {
		return zap.NewExample()
	}
	return log
}
