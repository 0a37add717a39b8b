// Command server runs the achievement registry HTTP API.
//
// Startup order: env file, logging, configuration, tracing, store, registry
// engine (with admin bootstrap), router, then the HTTP server with graceful
// shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/offerhub/go-reputation-registry/internal/config"
	httpapi "github.com/offerhub/go-reputation-registry/internal/http"
	"github.com/offerhub/go-reputation-registry/internal/observability"
	"github.com/offerhub/go-reputation-registry/internal/registry"
	"github.com/offerhub/go-reputation-registry/internal/store"
	"github.com/offerhub/go-reputation-registry/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// .env is optional; real deployments use the process environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx := context.Background()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		log.Fatal().Err(err).Msg("otel setup failed")
	}

	kv, err := store.Open(cfg.StoreBackend, cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("backend", cfg.StoreBackend).Msg("store open failed")
	}
	defer func() {
		if err := kv.Close(); err != nil {
			log.Error().Err(err).Msg("store close failed")
		}
	}()

	reg := registry.New(kv,
		registry.WithAuthenticator(httpapi.NewAuthenticator()),
		registry.WithEmitter(registry.LogEmitter{Log: log.Logger}),
	)

	if cfg.AdminPrincipal != "" {
		initialized, err := reg.Initialized(ctx)
		if err != nil {
			log.Fatal().Err(err).Msg("init check failed")
		}
		if !initialized {
			if err := reg.Init(ctx, cfg.AdminPrincipal); err != nil {
				log.Fatal().Err(err).Msg("admin bootstrap failed")
			}
			log.Info().Str("admin", cfg.AdminPrincipal).Msg("registry initialized")
		}
	}

	engine := gin.New()
	httpapi.RegisterRoutes(engine, reg, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("backend", cfg.StoreBackend).
			Str("version", version).
			Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
	if err := shutdownOTel(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("otel shutdown failed")
	}
	log.Info().Msg("bye")
}
