// Copyright (c) 2026 Arosenius Archive Project. All rights reserved.
// Author: dev@aroseniusarkivet.org

/*
Package api assembles the HTTP server: the middleware chain, the public
catalog surface, and the gated admin surface.

# Route Map

Public: /documents, /document/{id}, the facet listings, /similar/{id},
/next /prev /highest_insert_id, /image_file_list, /health, /ready,
/metrics.

Admin (Basic auth or bearer token): /admin/login, /admin/documents,
/admin/document/{id}, /admin/documents/combine, /admin/upload.
*/
package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gu-cdh/arosenius-api/internal/core/artwork"
	"github.com/gu-cdh/arosenius-api/internal/core/auth"
	"github.com/gu-cdh/arosenius-api/internal/core/facet"
	"github.com/gu-cdh/arosenius-api/internal/core/media"
	"github.com/gu-cdh/arosenius-api/internal/core/similar"
	"github.com/gu-cdh/arosenius-api/internal/platform/config"
	"github.com/gu-cdh/arosenius-api/internal/platform/constants"
	"github.com/gu-cdh/arosenius-api/internal/platform/metrics"
	"github.com/gu-cdh/arosenius-api/internal/platform/middleware"
	"github.com/gu-cdh/arosenius-api/internal/platform/sec"
)

// Handlers bundles the mounted domain handlers.
type Handlers struct {
	Artwork *artwork.Handler
	Facet   *facet.Handler
	Similar *similar.Handler
	Media   *media.Handler
	Auth    *auth.Handler
}

// Server is the assembled HTTP server.
type Server struct {
	config *config.Config
	logger *slog.Logger
	http   *http.Server
}

/*
NewServer builds the router and wraps it in an [http.Server] with the
platform timeouts.

Parameters:
  - lifecycle: context.Context (Owns background middleware goroutines; cancel on shutdown)
  - configuration: *config.Config
  - logger: *slog.Logger
  - tokens: *sec.TokenService (Verifies bearer tokens at the admin gate)
  - handlers: Handlers
  - readiness: ReadinessChecks (Probed by GET /ready)
*/
func NewServer(lifecycle context.Context, configuration *config.Config, logger *slog.Logger, tokens *sec.TokenService, handlers Handlers, readiness ReadinessChecks) *Server {
	router := chi.NewRouter()

	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogger(logger))
	router.Use(middleware.PanicRecovery(logger))
	router.Use(middleware.RateLimit(lifecycle))
	router.Use(middleware.CORS())
	router.Use(metrics.Middleware())

	handlers.Artwork.MountPublic(router)
	handlers.Facet.Mount(router)
	handlers.Similar.Mount(router)
	handlers.Media.Mount(router)

	router.Get("/health", healthHandler())
	router.Get("/ready", readyHandler(readiness))
	router.Handle("/metrics", promhttp.Handler())

	router.Route("/admin", func(admin chi.Router) {
		admin.Use(middleware.AdminGate(configuration.AdminUser, configuration.AdminPasswordHash, tokens))
		handlers.Auth.MountAdmin(admin)
		handlers.Artwork.MountAdmin(admin)
		handlers.Media.MountAdmin(admin)
	})

	return &Server{
		config: configuration,
		logger: logger,
		http: &http.Server{
			Addr:              ":" + configuration.ServerPort,
			Handler:           http.TimeoutHandler(router, constants.GlobalRequestTimeout, "request timed out"),
			ReadTimeout:       constants.DefaultReadTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
			WriteTimeout:      constants.GlobalRequestTimeout + constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
		},
	}
}

// Run serves until the context is canceled, then drains in-flight requests
// within the shutdown timeout.
func (server *Server) Run(ctx context.Context) error {
	errs := make(chan error, 1)

	go func() {
		server.logger.Info("server listening",
			slog.String("addr", server.http.Addr),
			slog.String("environment", server.config.Environment),
			slog.String("search_backend", server.config.SearchBackend),
		)
		if err := server.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	server.logger.Info("server shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
	defer cancel()

	return server.http.Shutdown(shutdownCtx)
}
