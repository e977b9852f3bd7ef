package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/mytask-service/internal/api/http"
	"github.com/spec-kit/mytask-service/internal/api/http/handlers"
	"github.com/spec-kit/mytask-service/internal/auth"
	"github.com/spec-kit/mytask-service/internal/config"
	"github.com/spec-kit/mytask-service/internal/observability"
	"github.com/spec-kit/mytask-service/internal/persistence"
	"github.com/spec-kit/mytask-service/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongo, err := persistence.NewMongo(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("failed to connect mongodb", zap.Error(err))
	}
	defer mongo.Close(context.Background())

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	db := mongo.Database()
	userRepo := repository.NewUserRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	revocationRepo := repository.NewRevocationRepository(redis.Client)

	tokenManager := auth.NewTokenManager(cfg.Auth.AccessTokenSecret, cfg.Auth.AccessTokenTTL())
	cookieWriter := auth.NewCookieWriter(cfg.Auth.CookieName, cfg.App.IsProduction())
	authMiddleware := auth.NewAuthMiddleware(tokenManager, revocationRepo, cfg.Auth.CookieName)

	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(mongo, redis),
		Auth:           handlers.NewAuthHandler(tokenManager, revocationRepo, cookieWriter, logger),
		Users:          handlers.NewUsersHandler(userRepo),
		Tasks:          handlers.NewTasksHandler(taskRepo),
		AuthMiddleware: authMiddleware,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
