package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/api"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/config"
	mongodb "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/db/mongo"
	redisdb "github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/db/redis"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/infrastructure/storage"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/internal/pkg/token"
	"github.com/c3m3z4c4/esmeralda-rojas-portfolio-backend/pkg/logger"
)

const tokenTTL = 7 * 24 * time.Hour

// @title        Esmeralda Rojas Portfolio API
// @version      1.0
// @description  REST backend for the portfolio site: projects, experience, certifications, contact inbox and site settings.
// @securityDefinitions.apikey  BearerAuth
// @in    header
// @name  Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		bootLog := logger.New(logger.Options{})
		bootLog.Fatal().Err(err).Msg("load configuration")
	}

	log := logger.New(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to mongodb")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect")
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("ensure indexes")
	}
	if err := mongodb.Seed(ctx, db, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		log.Fatal().Err(err).Msg("seed database")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("connect to redis")
	}
	defer func() {
		if err := rdb.Close(); err != nil {
			log.Warn().Err(err).Msg("redis close")
		}
	}()

	codec, err := token.NewCodec(cfg.JWTSecret, tokenTTL)
	if err != nil {
		log.Fatal().Err(err).Msg("token codec")
	}

	store, err := storage.NewDiskStore(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("uploads directory")
	}

	e := api.NewRouter(api.Dependencies{
		DB:        db,
		Redis:     rdb,
		Codec:     codec,
		FileStore: store,
		BaseURL:   cfg.BaseURL,
		UploadDir: store.Root(),
		Logger:    log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
