package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/saiketsystems/user-management-api/internal/api"
	"github.com/saiketsystems/user-management-api/internal/infrastructure/config"
	mongodb "github.com/saiketsystems/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/saiketsystems/user-management-api/internal/infrastructure/db/redis"
	"github.com/saiketsystems/user-management-api/pkg/logger"
)

// @title        User Management API
// @version      1.0.0
// @description  User management service with JWT authentication and role-based access control.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// The server signs and verifies tokens, so an empty secret is fatal
	// here even though config.Load tolerates it for the seed command.
	if cfg.Auth.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	// Unique indexes on username/email must exist before serving traffic:
	// they are what turns a registration race into a clean conflict.
	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("index bootstrap failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() {
		_ = rdb.Close()
	}()

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil {
			log.Info().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server shut down")
}
