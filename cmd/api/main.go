// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

// Command api runs the archive catalog API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gu-cdh/arosenius-api/internal/api"
	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	"github.com/gu-cdh/arosenius-api/internal/core/auth"
	"github.com/gu-cdh/arosenius-api/internal/core/facet"
	"github.com/gu-cdh/arosenius-api/internal/core/media"
	"github.com/gu-cdh/arosenius-api/internal/core/similar"
	"github.com/gu-cdh/arosenius-api/internal/platform/config"
	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	"github.com/gu-cdh/arosenius-api/internal/platform/migration"
	"github.com/gu-cdh/arosenius-api/internal/platform/postgres"
	redisplatform "github.com/gu-cdh/arosenius-api/internal/platform/redis"
	"github.com/gu-cdh/arosenius-api/internal/platform/sec"
	"github.com/gu-cdh/arosenius-api/internal/search"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logLevel := slog.LevelInfo
	if cfg.Debug {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
		return err
	}

	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return err
	}
	defer pool.Close()

	readiness := api.ReadinessChecks{
		"postgres": func(ctx context.Context) error { return postgres.Ping(ctx, pool) },
	}

	var executor search.Executor
	var indexer artwork.Indexer

	switch cfg.SearchBackend {
	case config.BackendRediSearch:
		client, err := redisplatform.NewClient(ctx, cfg.RedisURL, logger)
		if err != nil {
			return err
		}
		defer client.Close()

		redisearch := search.NewRediSearchExecutor(client, cfg.SearchIndex)
		if err := redisearch.EnsureIndex(ctx); err != nil {
			return err
		}
		executor = redisearch
		indexer = redisearch
		readiness["redis"] = func(ctx context.Context) error { return redisplatform.Ping(ctx, client) }
	default:
		executor = search.NewPostgresExecutor(pool)
	}

	tokens, err := sec.NewTokenService(cfg.AdminTokenSecret, constants.AuthIssuer)
	if err != nil {
		return err
	}

	artworkRepository := artwork.NewRepository(pool)
	artworkService := artwork.NewService(artworkRepository, executor, indexer, artwork.NewSizeProber(cfg.ImagePath))
	facetService := facet.NewService(facet.NewRepository(pool))
	similarService := similar.NewService(artworkRepository, executor)
	mediaService := media.NewService(cfg.ImagePath)

	handlers := api.Handlers{
		Artwork: artwork.NewHandler(artworkService),
		Facet:   facet.NewHandler(facetService),
		Similar: similar.NewHandler(similarService),
		Media:   media.NewHandler(mediaService),
		Auth:    auth.NewHandler(tokens),
	}

	server := api.NewServer(ctx, cfg, logger, tokens, handlers, readiness)
	return server.Run(ctx)
}
